package profiles_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/studyboard/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/repomanager"
)

func setupRepo(t *testing.T) profiles.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, m.EnsureSchema(context.Background(), db))
	return m.Profiles(db)
}

func TestGetNote_Empty(t *testing.T) {
	repo := setupRepo(t)

	note, err := repo.GetNote(context.Background(), "alice")
	require.NoError(t, err)
	require.Empty(t, note)
}

func TestSetNote_Roundtrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetNote(ctx, "alice", "remember the quiz"))

	note, err := repo.GetNote(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "remember the quiz", note)
}

func TestSetClass_ReplacesNotAccumulates(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetClass(ctx, "alice", "A"))
	require.NoError(t, repo.SetClass(ctx, "alice", "B"))

	class, err := repo.GetClass(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "B", class)
}

func TestSetNote_PerUser(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetNote(ctx, "alice", "mine"))
	require.NoError(t, repo.SetNote(ctx, "bob", "theirs"))

	note, err := repo.GetNote(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "mine", note)
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetNote(ctx, "alice", "note"))
	require.NoError(t, repo.SetClass(ctx, "alice", "A"))
	require.NoError(t, repo.SetClass(ctx, "bob", "C"))

	require.NoError(t, repo.Delete(ctx, "alice"))

	note, err := repo.GetNote(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, note)

	class, err := repo.GetClass(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, class)

	// other users untouched
	class, err = repo.GetClass(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, "C", class)
}

func TestDeleteAll(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetNote(ctx, "alice", "note"))
	require.NoError(t, repo.SetClass(ctx, "bob", "C"))

	require.NoError(t, repo.DeleteAll(ctx))

	note, err := repo.GetNote(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, note)

	class, err := repo.GetClass(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, class)
}
