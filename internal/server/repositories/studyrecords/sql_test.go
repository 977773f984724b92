package studyrecords_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/studyboard/internal/server/models"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/studyrecords"
)

func setupRepo(t *testing.T) studyrecords.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, m.EnsureSchema(context.Background(), db))
	return m.StudyRecords(db)
}

func TestAppendAndList_InsertionOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	// dates deliberately out of order: listing follows insertion,
	// not the date column
	inserts := []models.StudyRecord{
		{Username: "alice", Date: "2024-05-03", StudyHours: 2.5, Score: 80},
		{Username: "alice", Date: "2024-05-01", StudyHours: 0, Score: 0},
		{Username: "alice", Date: "2024-05-02", StudyHours: 1.25, Score: 100},
	}
	for i := range inserts {
		rec := inserts[i]
		require.NoError(t, repo.Append(ctx, &rec))
		require.NotZero(t, rec.ID)
	}

	records, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, rec := range records {
		require.Equal(t, inserts[i].Date, rec.Date)
		require.Equal(t, inserts[i].StudyHours, rec.StudyHours)
		require.Equal(t, inserts[i].Score, rec.Score)
	}
}

func TestList_OnlyOwnRecords(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &models.StudyRecord{Username: "alice", Date: "2024-05-01", StudyHours: 1, Score: 50}))
	require.NoError(t, repo.Append(ctx, &models.StudyRecord{Username: "bob", Date: "2024-05-01", StudyHours: 3, Score: 90}))

	records, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "alice", records[0].Username)
}

func TestAppend_MultiplePerDateAllowed(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &models.StudyRecord{Username: "alice", Date: "2024-05-01", StudyHours: 1, Score: 50}))
	require.NoError(t, repo.Append(ctx, &models.StudyRecord{Username: "alice", Date: "2024-05-01", StudyHours: 2, Score: 60}))

	records, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestDeleteByUser(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &models.StudyRecord{Username: "alice", Date: "2024-05-01", StudyHours: 1, Score: 50}))
	require.NoError(t, repo.Append(ctx, &models.StudyRecord{Username: "bob", Date: "2024-05-01", StudyHours: 3, Score: 90}))

	require.NoError(t, repo.DeleteByUser(ctx, "alice"))

	records, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, records)

	records, err = repo.ListByUser(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestDeleteAll(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &models.StudyRecord{Username: "alice", Date: "2024-05-01", StudyHours: 1, Score: 50}))
	require.NoError(t, repo.Append(ctx, &models.StudyRecord{Username: "bob", Date: "2024-05-01", StudyHours: 3, Score: 90}))

	require.NoError(t, repo.DeleteAll(ctx))

	for _, name := range []string{"alice", "bob"} {
		records, err := repo.ListByUser(ctx, name)
		require.NoError(t, err)
		require.Empty(t, records)
	}
}
