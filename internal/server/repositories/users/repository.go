// Package users persists user credentials and roles.
package users

import (
	"context"

	"github.com/dmitrijs2005/studyboard/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. Returns common.ErrorDuplicateUser if
	// the username is already taken; it never overwrites.
	Create(ctx context.Context, user *models.User) error

	// Get returns the stored user or common.ErrorNotFound.
	Get(ctx context.Context, username string) (*models.User, error)

	// Exists reports whether a credential row exists for username.
	Exists(ctx context.Context, username string) (bool, error)

	// UpdateRole changes the stored role. common.ErrorNotFound if the
	// user is absent.
	UpdateRole(ctx context.Context, username string, role string) error

	// Delete removes the credential row only.
	Delete(ctx context.Context, username string) error

	// DeleteAll wipes the users table.
	DeleteAll(ctx context.Context) error
}
