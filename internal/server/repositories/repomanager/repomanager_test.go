package repomanager_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/studyboard/internal/server/repositories/repomanager"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLiteRepositoryManager()
	ctx := context.Background()

	require.NoError(t, m.EnsureSchema(ctx, db))
	// second run must be a no-op, not an error
	require.NoError(t, m.EnsureSchema(ctx, db))

	for _, table := range []string{"users", "profile_notes", "class_labels", "study_records", "chat_messages"} {
		var n int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n), "table %s must exist", table)
		require.Zero(t, n)
	}
}

func TestEnsureSchema_ClosedDB(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	m := repomanager.NewSQLiteRepositoryManager()
	require.Error(t, m.EnsureSchema(context.Background(), db))
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()

	db, m, err := repomanager.Open(ctx, repomanager.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, m.EnsureSchema(ctx, db))
	require.NotNil(t, m.Users(db))
	require.NotNil(t, m.Profiles(db))
	require.NotNil(t, m.StudyRecords(db))
	require.NotNil(t, m.ChatMessages(db))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := repomanager.Open(context.Background(), "oracle", "dsn")
	require.Error(t, err)
}
