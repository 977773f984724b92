package models

// StudyRecord is one append-only study-log entry. Multiple records per
// user and date are allowed; ID reflects insertion order.
type StudyRecord struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Date       string  `json:"date"` // ISO date, e.g. "2024-05-01"
	StudyHours float64 `json:"study_hours"`
	Score      int     `json:"score"`
}
