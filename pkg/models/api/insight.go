package api

import "time"

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Signal mirrors domain.Signal for JSON transport. PercentChange is nil
// for zero-baseline moves (the domain value is +Inf, which JSON cannot
// encode); FromZeroBase marks that case explicitly.
type Signal struct {
	Metric         string   `json:"metric"`
	PreviousValue  float64  `json:"previous_value"`
	CurrentValue   float64  `json:"current_value"`
	AbsoluteChange float64  `json:"absolute_change"`
	PercentChange  *float64 `json:"percent_change"`
	FromZeroBase   bool     `json:"from_zero_base,omitempty"`
	Severity       Severity `json:"severity"`
}

type DimensionDelta struct {
	Previous        float64 `json:"previous"`
	Current         float64 `json:"current"`
	Delta           float64 `json:"delta"`
	ContributionPct float64 `json:"contribution_pct"`
}

type AttributionResult struct {
	Deltas     map[string]DimensionDelta `json:"per_dimension_deltas"`
	Ranked     []string                  `json:"ranked_top_n"`
	TotalDelta float64                   `json:"total_delta"`
}

type MetricDetail struct {
	Narrative   string             `json:"narrative,omitempty"`
	Signal      *Signal            `json:"signal"`
	Attribution *AttributionResult `json:"attribution"`
}

type MoneyPair struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

type RevenueKpi struct {
	Current   float64  `json:"current"`
	Previous  float64  `json:"previous"`
	GrowthPct *float64 `json:"growth_pct"`
}

type ProfitLoss struct {
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

type KpiSnapshot struct {
	PeriodCurrent  string     `json:"period_current"`
	PeriodPrevious string     `json:"period_previous"`
	Burn           MoneyPair  `json:"burn"`
	Revenue        RevenueKpi `json:"revenue"`
	ProfitLoss     ProfitLoss `json:"profit_loss"`
	CashBalance    float64    `json:"cash_balance"`
	RunwayMonths   *float64   `json:"runway_months"`
}

type ReasoningResult struct {
	Kpis        KpiSnapshot             `json:"kpis"`
	Causes      []string                `json:"causes"`
	Predictions []string                `json:"predictions"`
	Details     map[string]MetricDetail `json:"details"`
}

type Alert struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"timestamp"`
}
