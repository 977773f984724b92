package models

import "time"

// Session is the explicit trust record identifying an authenticated
// user. It lives only in process memory: no persisted token, no
// expiry, and no re-verification against the credential store after
// login.
type Session struct {
	ID        string
	Username  string
	Role      string
	CreatedAt time.Time
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
