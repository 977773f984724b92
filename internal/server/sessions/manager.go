// Package sessions keeps the in-process registry of authenticated
// users. A session is created on login and destroyed on logout,
// account deletion, or process exit; nothing is persisted and nothing
// expires on its own. After login the session is the only source of
// identity: no operation re-verifies it against the credential store.
package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/studyboard/internal/server/models"
)

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*models.Session)}
}

// Create registers a new session for the given user and returns it.
func (m *Manager) Create(username string, role string) *models.Session {
	s := &models.Session{
		ID:        uuid.NewString(),
		Username:  username,
		Role:      role,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s

	return s
}

// Get resolves a session ID. The second return value is false for
// unknown or destroyed sessions.
func (m *Manager) Get(id string) (*models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Destroy removes a single session. Unknown IDs are a no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// DestroyUser removes every session belonging to username, so a
// deleted account cannot keep acting through a live session.
func (m *Manager) DestroyUser(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.Username == username {
			delete(m.sessions, id)
		}
	}
}

// DestroyAll removes every session. Runs as part of the global wipe.
func (m *Manager) DestroyAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]*models.Session)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
