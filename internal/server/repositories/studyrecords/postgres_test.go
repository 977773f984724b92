package studyrecords

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/studyboard/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresAppend_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+study_records\s*\(username,\s*date,\s*study_hours,\s*score\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(7))
	mock.ExpectQuery(q).
		WithArgs("alice", "2024-05-01", 2.5, 80).
		WillReturnRows(rows)

	rec := &models.StudyRecord{Username: "alice", Date: "2024-05-01", StudyHours: 2.5, Score: 80}
	if err := repo.Append(context.Background(), rec); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if rec.ID != 7 {
		t.Fatalf("expected ID 7, got %d", rec.ID)
	}
}

func TestPostgresAppend_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+study_records`).
		WithArgs("alice", "2024-05-01", 2.5, 80).
		WillReturnError(errors.New("db down"))

	err := repo.Append(context.Background(), &models.StudyRecord{Username: "alice", Date: "2024-05-01", StudyHours: 2.5, Score: 80})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*date,\s*study_hours,\s*score\s+FROM\s+study_records\s+WHERE\s+username\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id", "username", "date", "study_hours", "score"}).
		AddRow(int64(1), "alice", "2024-05-01", 1.5, 70).
		AddRow(int64(2), "alice", "2024-05-02", 2.0, 90)
	mock.ExpectQuery(q).WithArgs("alice").WillReturnRows(rows)

	records, err := repo.ListByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(records) != 2 || records[0].Score != 70 || records[1].StudyHours != 2.0 {
		t.Fatalf("unexpected records: %+v", records)
	}
}
