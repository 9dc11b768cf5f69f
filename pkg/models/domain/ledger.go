package domain

// CashEntry is one period of the cash time series.
type CashEntry struct {
	Period  string
	CashIn  float64
	CashOut float64
	Balance float64
}

// Receivable is a single outstanding invoice.
type Receivable struct {
	ID          string
	Amount      float64
	DaysPastDue int
}
