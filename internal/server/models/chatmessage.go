package models

// ChatMessage is one globally shared chat line. Messages are never
// edited or deleted through the normal interface.
type ChatMessage struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // ISO datetime, e.g. "2024-05-01T12:00:00Z"
}
