package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/studyboard/internal/dbx"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/chatmessages"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/studyrecords"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/users"
)

type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user'
		)`,
		`CREATE TABLE IF NOT EXISTS profile_notes (
			username TEXT PRIMARY KEY,
			content TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS class_labels (
			username TEXT PRIMARY KEY,
			class_grade TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS study_records (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			date TEXT NOT NULL,
			study_hours DOUBLE PRECISION NOT NULL,
			score INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			message TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)`,
	}
	if err := execAll(ctx, db, statements); err != nil {
		return fmt.Errorf("schema error: %w", err)
	}
	return nil
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) StudyRecords(db dbx.DBTX) studyrecords.Repository {
	return studyrecords.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) ChatMessages(db dbx.DBTX) chatmessages.Repository {
	return chatmessages.NewPostgresRepository(db)
}
