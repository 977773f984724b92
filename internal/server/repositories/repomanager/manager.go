// Package repomanager wires a database backend to its repository
// implementations and owns the schema bootstrap for the five tables:
// users, profile_notes, class_labels, study_records, chat_messages.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studyboard/internal/dbx"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/chatmessages"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/studyrecords"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/users"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type RepositoryManager interface {
	// EnsureSchema creates the five tables if they do not exist.
	// Idempotent; safe to run on every startup. Connectivity errors
	// are returned to the caller, never swallowed.
	EnsureSchema(ctx context.Context, db *sql.DB) error

	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	StudyRecords(db dbx.DBTX) studyrecords.Repository
	ChatMessages(db dbx.DBTX) chatmessages.Repository
}

func execAll(ctx context.Context, db *sql.DB, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
