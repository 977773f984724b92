package studyrecords

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/studyboard/internal/dbx"
	"github.com/dmitrijs2005/studyboard/internal/server/models"
)

// SQLRepository works against SQLite and MySQL, which share the `?`
// placeholder style.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Append(ctx context.Context, record *models.StudyRecord) error {
	query := `INSERT INTO study_records (username, date, study_hours, score) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, record.Username, record.Date, record.StudyHours, record.Score)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	record.ID = id
	return nil
}

func (r *SQLRepository) ListByUser(ctx context.Context, username string) ([]models.StudyRecord, error) {
	query :=
		`SELECT id, username, date, study_hours, score FROM study_records
		 WHERE username = ?
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

func (r *SQLRepository) DeleteByUser(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_records WHERE username = ?`, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_records`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
