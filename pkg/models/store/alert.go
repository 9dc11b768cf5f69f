package store

import "time"

// AlertRecord is a persisted nudge, tagged with the company it was
// evaluated for and the evaluation timestamp.
type AlertRecord struct {
	ID        string
	CompanyID string
	Severity  string
	Message   string
	CreatedAt time.Time
}
