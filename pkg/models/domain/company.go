package domain

import "fmt"

// CompanyProfile identifies one company's ledger and presentation settings.
type CompanyProfile struct {
	ID         string
	Name       string
	Currency   string // symbol used in narratives, e.g. "₹"
	LedgerPath string
}

func (p CompanyProfile) String() string {
	return fmt.Sprintf("%s (%s)", p.ID, p.Name)
}
