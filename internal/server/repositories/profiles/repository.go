// Package profiles persists the per-user profile note and class/grade
// label. Both are keyed by username and replaced wholesale on update.
package profiles

import "context"

type Repository interface {
	// GetNote returns the stored note, or "" when none exists.
	GetNote(ctx context.Context, username string) (string, error)

	// SetNote atomically inserts or replaces the note.
	SetNote(ctx context.Context, username string, content string) error

	// GetClass returns the stored class label, or "" when none exists.
	GetClass(ctx context.Context, username string) (string, error)

	// SetClass atomically inserts or replaces the class label.
	SetClass(ctx context.Context, username string, classGrade string) error

	// Delete removes the user's note and class label.
	Delete(ctx context.Context, username string) error

	// DeleteAll wipes both tables.
	DeleteAll(ctx context.Context) error
}
