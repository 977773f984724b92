// Package chatmessages persists the globally shared, append-only chat
// log.
package chatmessages

import (
	"context"

	"github.com/dmitrijs2005/studyboard/internal/server/models"
)

// Order selects the direction of a chat listing. Earlier revisions of
// the board flipped between newest-first and oldest-first, so the
// direction is an explicit parameter rather than a constant.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Valid reports whether o is one of the two supported directions.
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

type Repository interface {
	// Append inserts one message and fills in its ID. There is no
	// update or delete path for individual messages.
	Append(ctx context.Context, message *models.ChatMessage) error

	// List returns every message ordered by timestamp in the given
	// direction, with insertion order breaking ties.
	List(ctx context.Context, order Order) ([]models.ChatMessage, error)

	// DeleteAll wipes the table. Reserved for the privileged global
	// wipe; no per-message removal exists.
	DeleteAll(ctx context.Context) error
}
