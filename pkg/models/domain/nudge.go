package domain

// Nudge is a threshold-triggered, severity-tagged advisory message.
type Nudge struct {
	Severity Severity
	Message  string
}
