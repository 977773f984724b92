package studyrecords

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studyboard/internal/dbx"
	"github.com/dmitrijs2005/studyboard/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, record *models.StudyRecord) error {
	query :=
		`INSERT INTO study_records (username, date, study_hours, score)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		record.Username, record.Date, record.StudyHours, record.Score).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, username string) ([]models.StudyRecord, error) {
	query :=
		`SELECT id, username, date, study_hours, score FROM study_records
		 WHERE username = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var records []models.StudyRecord
	for rows.Next() {
		var rec models.StudyRecord
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.Date, &rec.StudyHours, &rec.Score); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return records, nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_records WHERE username = $1`, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_records`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
