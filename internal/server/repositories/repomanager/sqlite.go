package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studyboard/internal/dbx"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/chatmessages"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/studyrecords"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/users"
	_ "modernc.org/sqlite"
)

type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) EnsureSchema(ctx context.Context, db *sql.DB) error {
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			date TEXT NOT NULL,
			study_hours REAL NOT NULL,
			score INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
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

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

func (m *SQLiteRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) StudyRecords(db dbx.DBTX) studyrecords.Repository {
	return studyrecords.NewSQLRepository(db)
}

func (m *SQLiteRepositoryManager) ChatMessages(db dbx.DBTX) chatmessages.Repository {
	return chatmessages.NewSQLRepository(db)
}
