package domain

type ProfitStatus string

const (
	ProfitStatusProfit ProfitStatus = "profit"
	ProfitStatusLoss   ProfitStatus = "loss"
)

type MoneyPair struct {
	Current  float64
	Previous float64
}

// RevenueKpi carries the period pair plus month-over-month growth.
// GrowthPct is +Inf when the previous period had no revenue.
type RevenueKpi struct {
	Current   float64
	Previous  float64
	GrowthPct float64
}

type ProfitLoss struct {
	Amount float64
	Status ProfitStatus
}

// KpiSnapshot is computed fresh from the ledger on every request and is
// never cached across requests.
type KpiSnapshot struct {
	PeriodCurrent  string
	PeriodPrevious string
	Burn           MoneyPair
	Revenue        RevenueKpi
	ProfitLoss     ProfitLoss
	CashBalance    float64
	// RunwayMonths is nil when burn is zero or negative.
	RunwayMonths *float64
}

// ReasoningResult is the engine's terminal output artifact.
type ReasoningResult struct {
	Kpis        KpiSnapshot
	Causes      []string
	Predictions []string
	Details     map[string]CausalNarrative
}
