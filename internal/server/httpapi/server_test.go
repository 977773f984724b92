package httpapi_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/studyboard/internal/logging"
	"github.com/dmitrijs2005/studyboard/internal/server/httpapi"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studyboard/internal/server/services"
	"github.com/dmitrijs2005/studyboard/internal/server/sessions"
)

type testServer struct {
	engine *gin.Engine
	users  *services.UserService
	study  *services.StudyLogService
	chat   *services.ChatService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, repos.EnsureSchema(context.Background(), db))

	sm := sessions.NewManager()
	users := services.NewUserService(db, repos, sm)
	profiles := services.NewProfileService(db, repos)
	study := services.NewStudyLogService(db, repos)
	chat := services.NewChatService(db, repos)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httpapi.NewServer(":0", logger, sm, users, profiles, study, chat)

	return &testServer{engine: srv.Engine(), users: users, study: study, chat: chat}
}

func (ts *testServer) do(t *testing.T, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(httpapi.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

// signupAndLogin registers a user and returns a live session ID.
func (ts *testServer) signupAndLogin(t *testing.T, username, password string) string {
	t.Helper()

	w := ts.do(t, http.MethodPost, "/api/signup", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/login", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func TestSignupLoginFlow(t *testing.T) {
	ts := newTestServer(t)

	sid := ts.signupAndLogin(t, "alice", "secret")

	w := ts.do(t, http.MethodGet, "/api/session", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestSignup_Duplicate(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/signup", "", gin.H{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/signup", "", gin.H{"username": "alice", "password": "other"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "user_exists")
}

func TestLogin_BadCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.signupAndLogin(t, "alice", "secret")

	wrongPass := ts.do(t, http.MethodPost, "/api/login", "", gin.H{"username": "alice", "password": "nope"})
	unknownUser := ts.do(t, http.MethodPost, "/api/login", "", gin.H{"username": "mallory", "password": "nope"})

	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	// identical body, no username-exists oracle
	require.Equal(t, wrongPass.Body.String(), unknownUser.Body.String())
}

func TestUnauthenticated_RejectedWithoutMutation(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/chat/messages", "", gin.H{"message": "hi"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/api/study/records", "", gin.H{"date": "2024-05-01", "study_hours": 1, "score": 50})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodGet, "/api/chat/messages", "bogus-session", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	messages, err := ts.chat.List(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, messages)

	records, err := ts.study.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestStudyRecords_EndToEnd(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.signupAndLogin(t, "alice", "secret")

	w := ts.do(t, http.MethodPost, "/api/study/records", sid, gin.H{"date": "2024-05-01", "study_hours": 1.5, "score": 80})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/study/records", sid, gin.H{"date": "2024-05-01", "study_hours": 1, "score": 120})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = ts.do(t, http.MethodGet, "/api/study/records", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Records []struct {
			Date       string  `json:"date"`
			StudyHours float64 `json:"study_hours"`
			Score      int     `json:"score"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 1)
	require.Equal(t, 1.5, resp.Records[0].StudyHours)
}

func TestChatMessages_OrderParam(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.signupAndLogin(t, "alice", "secret")

	for _, m := range []gin.H{
		{"message": "first", "timestamp": "2024-05-01T10:00:00Z"},
		{"message": "second", "timestamp": "2024-05-01T11:00:00Z"},
	} {
		w := ts.do(t, http.MethodPost, "/api/chat/messages", sid, m)
		require.Equal(t, http.StatusOK, w.Code)
	}

	var resp struct {
		Messages []struct {
			Message string `json:"message"`
		} `json:"messages"`
	}

	w := ts.do(t, http.MethodGet, "/api/chat/messages?order=desc", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "second", resp.Messages[0].Message)

	w = ts.do(t, http.MethodGet, "/api/chat/messages", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "first", resp.Messages[0].Message)

	w = ts.do(t, http.MethodGet, "/api/chat/messages?order=sideways", sid, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestProfile_NoteAndClass(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.signupAndLogin(t, "alice", "secret")

	w := ts.do(t, http.MethodPut, "/api/profile/class", sid, gin.H{"class_grade": "3-B"})
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(t, http.MethodPut, "/api/profile/class", sid, gin.H{"class_grade": "4-A"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/profile/class", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"4-A"`)

	w = ts.do(t, http.MethodPut, "/api/profile/note", sid, gin.H{"content": "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(t, http.MethodGet, "/api/profile/note", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"hello"`)
}

func TestDeleteAccountData_KeepsLogin(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.signupAndLogin(t, "alice", "secret")

	w := ts.do(t, http.MethodPost, "/api/study/records", sid, gin.H{"date": "2024-05-01", "study_hours": 1, "score": 50})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/account/data", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/study/records", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Records []json.RawMessage `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Records)

	// credentials survive a data-only delete
	w = ts.do(t, http.MethodPost, "/api/login", "", gin.H{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteAccount_InvalidatesSession(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.signupAndLogin(t, "alice", "secret")

	w := ts.do(t, http.MethodDelete, "/api/account", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/session", sid, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/api/login", "", gin.H{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWipeAll_ForbiddenForRegularUser(t *testing.T) {
	ts := newTestServer(t)
	sid := ts.signupAndLogin(t, "alice", "secret")

	w := ts.do(t, http.MethodDelete, "/api/admin/users", sid, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// the account is untouched
	w = ts.do(t, http.MethodGet, "/api/session", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestWipeAll_AdminSucceeds(t *testing.T) {
	ts := newTestServer(t)
	ts.signupAndLogin(t, "alice", "secret")

	w := ts.do(t, http.MethodPost, "/api/signup", "", gin.H{"username": "root", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, ts.users.PromoteToAdmin(context.Background(), "root"))

	w = ts.do(t, http.MethodPost, "/api/login", "", gin.H{"username": "root", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = ts.do(t, http.MethodDelete, "/api/admin/users", resp.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// every credential is gone
	w = ts.do(t, http.MethodPost, "/api/login", "", gin.H{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
