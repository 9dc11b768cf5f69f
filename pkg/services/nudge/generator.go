package nudge

import (
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/insight"
)

const (
	runwayCriticalMonths = 3.0
	runwayWarningMonths  = 6.0
	overdueThresholdDays = 30
)

// Generator evaluates static threshold rules over a KPI snapshot and the
// outstanding receivables. Rules are independent; every applicable rule
// fires.
type Generator struct {
	money insight.Money
}

func NewGenerator(currencySymbol string) *Generator {
	return &Generator{money: insight.NewMoney(currencySymbol)}
}

func (g *Generator) Generate(kpis domain.KpiSnapshot, receivables []domain.Receivable) []domain.Nudge {
	var nudges []domain.Nudge

	if kpis.RunwayMonths != nil {
		switch m := *kpis.RunwayMonths; {
		case m < runwayCriticalMonths:
			nudges = append(nudges, domain.Nudge{
				Severity: domain.SeverityHigh,
				Message:  fmt.Sprintf("Runway under 3 months (%.2f). Immediate action required.", m),
			})
		case m < runwayWarningMonths:
			nudges = append(nudges, domain.Nudge{
				Severity: domain.SeverityMedium,
				Message:  fmt.Sprintf("Runway under 6 months (%.2f). Consider cost controls.", m),
			})
		}
	}

	if kpis.ProfitLoss.Amount < 0 {
		nudges = append(nudges, domain.Nudge{
			Severity: domain.SeverityHigh,
			Message:  fmt.Sprintf("Negative profit this period: %s.", g.money.Format(kpis.ProfitLoss.Amount)),
		})
	}

	var overdueCount int
	var overdueTotal float64
	for _, r := range receivables {
		if r.DaysPastDue > overdueThresholdDays {
			overdueCount++
			overdueTotal += r.Amount
		}
	}
	if overdueCount > 0 {
		nudges = append(nudges, domain.Nudge{
			Severity: domain.SeverityMedium,
			Message: fmt.Sprintf("%d invoice(s) over 30 days past due totaling %s.",
				overdueCount, g.money.Format(overdueTotal)),
		})
	}

	return nudges
}
