package models

// Role values stored on a user row. Privileged operations check the
// role carried by the session, never a username literal.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Username     string
	PasswordHash string
	Role         string
}
