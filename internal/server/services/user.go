// Package services contains the server-side business logic sitting
// between the HTTP layer and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studyboard/internal/common"
	"github.com/dmitrijs2005/studyboard/internal/cryptox"
	"github.com/dmitrijs2005/studyboard/internal/dbx"
	"github.com/dmitrijs2005/studyboard/internal/server/models"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studyboard/internal/server/sessions"
)

// UserService handles signup, login, and the account-scoped and
// privileged delete operations.
type UserService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	sessions *sessions.Manager
}

func NewUserService(db *sql.DB, repos repomanager.RepositoryManager, sm *sessions.Manager) *UserService {
	return &UserService{db: db, repos: repos, sessions: sm}
}

// Register creates a new user with the given username and password.
// The password is stored only as its digest. A taken username yields
// common.ErrorDuplicateUser.
func (s *UserService) Register(ctx context.Context, username string, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	user := &models.User{
		Username:     username,
		PasswordHash: cryptox.HashPassword(password),
		Role:         models.RoleUser,
	}

	if err := s.repos.Users(s.db).Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorDuplicateUser) {
			return nil, common.ErrorDuplicateUser
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and, on success, opens a session.
// Every failure maps to the same common.ErrorUnauthorized so the
// response never reveals whether the username or the password was
// wrong.
func (s *UserService) Login(ctx context.Context, username string, password string) (*models.Session, error) {
	user, err := s.repos.Users(s.db).Get(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyDigest(user.PasswordHash, cryptox.HashPassword(password)) {
		return nil, common.ErrorUnauthorized
	}

	return s.sessions.Create(user.Username, user.Role), nil
}

// Logout destroys the session. Unknown IDs are a no-op.
func (s *UserService) Logout(sessionID string) {
	s.sessions.Destroy(sessionID)
}

// IsAuthenticated reports whether the session ID is live.
func (s *UserService) IsAuthenticated(sessionID string) bool {
	_, ok := s.sessions.Get(sessionID)
	return ok
}

// UserExists reports whether a credential row exists for username.
func (s *UserService) UserExists(ctx context.Context, username string) (bool, error) {
	exists, err := s.repos.Users(s.db).Exists(ctx, username)
	if err != nil {
		return false, fmt.Errorf("error checking user: %w", err)
	}
	return exists, nil
}

// PromoteToAdmin stores the admin role on an existing user. Used by
// the startup bootstrap; there is no HTTP surface for it.
func (s *UserService) PromoteToAdmin(ctx context.Context, username string) error {
	return s.repos.Users(s.db).UpdateRole(ctx, username, models.RoleAdmin)
}

// DeleteProfileData removes the user's study records, class label and
// profile note inside one transaction, keeping the credential row.
// The account stays able to log in with an empty profile.
func (s *UserService) DeleteProfileData(ctx context.Context, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.StudyRecords(tx).DeleteByUser(ctx, username); err != nil {
			return err
		}
		return s.repos.Profiles(tx).Delete(ctx, username)
	})
}

// DeleteAccount removes everything DeleteProfileData removes plus the
// credential row, then kills the user's live sessions.
func (s *UserService) DeleteAccount(ctx context.Context, username string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.StudyRecords(tx).DeleteByUser(ctx, username); err != nil {
			return err
		}
		if err := s.repos.Profiles(tx).Delete(ctx, username); err != nil {
			return err
		}
		return s.repos.Users(tx).Delete(ctx, username)
	})
	if err != nil {
		return err
	}

	s.sessions.DestroyUser(username)
	return nil
}

// WipeAll empties all five tables and destroys every live session.
// The calling session must carry the admin role; anything else is
// rejected with common.ErrorForbidden before any write.
func (s *UserService) WipeAll(ctx context.Context, session *models.Session) error {
	if !session.IsAdmin() {
		return common.ErrorForbidden
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.StudyRecords(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := s.repos.ChatMessages(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := s.repos.Profiles(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return s.repos.Users(tx).DeleteAll(ctx)
	})
	if err != nil {
		return err
	}

	s.sessions.DestroyAll()
	return nil
}
