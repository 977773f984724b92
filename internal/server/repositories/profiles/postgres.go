package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studyboard/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetNote(ctx context.Context, username string) (string, error) {
	return r.getOne(ctx, `SELECT content FROM profile_notes WHERE username = $1`, username)
}

func (r *PostgresRepository) SetNote(ctx context.Context, username string, content string) error {
	query :=
		`INSERT INTO profile_notes (username, content)
		 VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET content = EXCLUDED.content
		 `
	if _, err := r.db.ExecContext(ctx, query, username, content); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetClass(ctx context.Context, username string) (string, error) {
	return r.getOne(ctx, `SELECT class_grade FROM class_labels WHERE username = $1`, username)
}

func (r *PostgresRepository) SetClass(ctx context.Context, username string, classGrade string) error {
	query :=
		`INSERT INTO class_labels (username, class_grade)
		 VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET class_grade = EXCLUDED.class_grade
		 `
	if _, err := r.db.ExecContext(ctx, query, username, classGrade); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile_notes WHERE username = $1`, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM class_labels WHERE username = $1`, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile_notes`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM class_labels`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, username string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, query, username).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return value, nil
}
