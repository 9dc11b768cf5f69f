package store

// ExpenseRecord is one expense category's amount for a period.
type ExpenseRecord struct {
	Period   string
	Category string
	Amount   float64
}

// RevenueRecord is one revenue source's amount for a period.
type RevenueRecord struct {
	Period string
	Source string
	Amount float64
}

// CashRecord is one period of the cash time series.
type CashRecord struct {
	Period  string
	CashIn  float64
	CashOut float64
	Balance float64
}

// ReceivableRecord is an outstanding invoice row.
type ReceivableRecord struct {
	ID          string
	Amount      float64
	DaysPastDue int
	Status      string
}
