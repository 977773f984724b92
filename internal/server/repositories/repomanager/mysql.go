package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/dmitrijs2005/studyboard/internal/dbx"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/chatmessages"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/studyrecords"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/users"
)

type MySQLRepositoryManager struct{}

func NewMySQLRepositoryManager() *MySQLRepositoryManager {
	return &MySQLRepositoryManager{}
}

// VARCHAR(191) keeps the primary keys under the 767-byte index limit
// on utf8mb4 installations.
func (m *MySQLRepositoryManager) EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username VARCHAR(191) PRIMARY KEY,
			password_hash TEXT NOT NULL,
			role VARCHAR(32) NOT NULL DEFAULT 'user'
		)`,
		`CREATE TABLE IF NOT EXISTS profile_notes (
			username VARCHAR(191) PRIMARY KEY,
			content TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS class_labels (
			username VARCHAR(191) PRIMARY KEY,
			class_grade TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS study_records (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(191) NOT NULL,
			date VARCHAR(32) NOT NULL,
			study_hours DOUBLE NOT NULL,
			score INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(191) NOT NULL,
			message TEXT NOT NULL,
			timestamp VARCHAR(64) NOT NULL
		)`,
	}
	if err := execAll(ctx, db, statements); err != nil {
		return fmt.Errorf("schema error: %w", err)
	}
	return nil
}

func (m *MySQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

func (m *MySQLRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewMySQLRepository(db)
}

func (m *MySQLRepositoryManager) StudyRecords(db dbx.DBTX) studyrecords.Repository {
	return studyrecords.NewSQLRepository(db)
}

func (m *MySQLRepositoryManager) ChatMessages(db dbx.DBTX) chatmessages.Repository {
	return chatmessages.NewSQLRepository(db)
}
