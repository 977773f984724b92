package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studyboard/internal/server/repositories/repomanager"
)

// ProfileService exposes the per-user note and class/grade label.
// Both are single-row values replaced wholesale on update.
type ProfileService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, repos repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repos: repos}
}

// GetNote returns the user's note, or "" when none is stored.
func (s *ProfileService) GetNote(ctx context.Context, username string) (string, error) {
	note, err := s.repos.Profiles(s.db).GetNote(ctx, username)
	if err != nil {
		return "", fmt.Errorf("error reading note: %w", err)
	}
	return note, nil
}

// SetNote replaces the user's note atomically.
func (s *ProfileService) SetNote(ctx context.Context, username string, content string) error {
	if err := s.repos.Profiles(s.db).SetNote(ctx, username, content); err != nil {
		return fmt.Errorf("error saving note: %w", err)
	}
	return nil
}

// GetClass returns the user's class label, or "" when none is stored.
func (s *ProfileService) GetClass(ctx context.Context, username string) (string, error) {
	class, err := s.repos.Profiles(s.db).GetClass(ctx, username)
	if err != nil {
		return "", fmt.Errorf("error reading class: %w", err)
	}
	return class, nil
}

// SetClass replaces the user's class label atomically.
func (s *ProfileService) SetClass(ctx context.Context, username string, classGrade string) error {
	if err := s.repos.Profiles(s.db).SetClass(ctx, username, classGrade); err != nil {
		return fmt.Errorf("error saving class: %w", err)
	}
	return nil
}
