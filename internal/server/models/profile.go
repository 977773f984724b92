package models

// ProfileNote is the single free-text note a user keeps. At most one
// row per username; SetNote replaces it wholesale.
type ProfileNote struct {
	Username string
	Content  string
}

// ClassLabel is the user's class/grade label. At most one row per
// username; SetClass replaces it wholesale.
type ClassLabel struct {
	Username   string
	ClassGrade string
}
