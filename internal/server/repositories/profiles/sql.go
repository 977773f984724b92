package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studyboard/internal/dbx"
)

// SQLRepository works against SQLite and MySQL. The two dialects spell
// a native upsert differently, so the constructor picks the statements;
// everything else is shared.
type SQLRepository struct {
	db          dbx.DBTX
	upsertNote  string
	upsertClass string
}

// NewSQLiteRepository returns a repository using SQLite's
// ON CONFLICT upsert form.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{
		db:          db,
		upsertNote:  `INSERT INTO profile_notes (username, content) VALUES (?, ?) ON CONFLICT(username) DO UPDATE SET content = excluded.content`,
		upsertClass: `INSERT INTO class_labels (username, class_grade) VALUES (?, ?) ON CONFLICT(username) DO UPDATE SET class_grade = excluded.class_grade`,
	}
}

// NewMySQLRepository returns a repository using MySQL's
// ON DUPLICATE KEY upsert form.
func NewMySQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{
		db:          db,
		upsertNote:  `INSERT INTO profile_notes (username, content) VALUES (?, ?) ON DUPLICATE KEY UPDATE content = VALUES(content)`,
		upsertClass: `INSERT INTO class_labels (username, class_grade) VALUES (?, ?) ON DUPLICATE KEY UPDATE class_grade = VALUES(class_grade)`,
	}
}

func (r *SQLRepository) GetNote(ctx context.Context, username string) (string, error) {
	return r.getOne(ctx, `SELECT content FROM profile_notes WHERE username = ?`, username)
}

func (r *SQLRepository) SetNote(ctx context.Context, username string, content string) error {
	if _, err := r.db.ExecContext(ctx, r.upsertNote, username, content); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) GetClass(ctx context.Context, username string) (string, error) {
	return r.getOne(ctx, `SELECT class_grade FROM class_labels WHERE username = ?`, username)
}

func (r *SQLRepository) SetClass(ctx context.Context, username string, classGrade string) error {
	if _, err := r.db.ExecContext(ctx, r.upsertClass, username, classGrade); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile_notes WHERE username = ?`, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM class_labels WHERE username = ?`, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile_notes`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM class_labels`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) getOne(ctx context.Context, query string, username string) (string, error) {
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
