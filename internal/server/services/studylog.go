package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studyboard/internal/common"
	"github.com/dmitrijs2005/studyboard/internal/server/models"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/repomanager"
)

// StudyLogService appends and lists the per-user study log. Bounds are
// enforced here, before anything reaches storage.
type StudyLogService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewStudyLogService(db *sql.DB, repos repomanager.RepositoryManager) *StudyLogService {
	return &StudyLogService{db: db, repos: repos}
}

// Append validates and stores one study record. Hours must be
// non-negative and score must lie in [0,100]; violations are rejected
// with common.ErrorValidation without touching the database.
func (s *StudyLogService) Append(ctx context.Context, username string, date string, hours float64, score int) (*models.StudyRecord, error) {
	if date == "" {
		return nil, common.ErrorValidation
	}
	if hours < 0 {
		return nil, common.ErrorValidation
	}
	if score < 0 || score > 100 {
		return nil, common.ErrorValidation
	}

	record := &models.StudyRecord{
		Username:   username,
		Date:       date,
		StudyHours: hours,
		Score:      score,
	}
	if err := s.repos.StudyRecords(s.db).Append(ctx, record); err != nil {
		return nil, fmt.Errorf("error saving study record: %w", err)
	}
	return record, nil
}

// List returns the user's records in insertion order.
func (s *StudyLogService) List(ctx context.Context, username string) ([]models.StudyRecord, error) {
	records, err := s.repos.StudyRecords(s.db).ListByUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error listing study records: %w", err)
	}
	return records, nil
}
