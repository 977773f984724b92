// Package studyrecords persists the append-only per-user study log.
package studyrecords

import (
	"context"

	"github.com/dmitrijs2005/studyboard/internal/server/models"
)

type Repository interface {
	// Append inserts one record and fills in its ID. Bounds checking
	// is the service's job; the store writes what it is given.
	Append(ctx context.Context, record *models.StudyRecord) error

	// ListByUser returns the user's records in insertion order.
	ListByUser(ctx context.Context, username string) ([]models.StudyRecord, error)

	// DeleteByUser removes all of the user's records.
	DeleteByUser(ctx context.Context, username string) error

	// DeleteAll wipes the table.
	DeleteAll(ctx context.Context) error
}
