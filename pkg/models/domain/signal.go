package domain

import "time"

type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Signal records a significant period-over-period movement of a single
// scalar metric. PercentChange is +Inf when the previous value was zero;
// a move from a zero baseline is always reported.
type Signal struct {
	Metric         string
	PreviousValue  float64
	CurrentValue   float64
	AbsoluteChange float64
	PercentChange  float64
	Severity       Severity
	DetectedAt     time.Time
}
