package ledger

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/fin-tools/finsight/pkg/models/store"
	"golang.org/x/exp/maps"
)

// seedRandSource fixes the jitter so repeated seeding produces the same
// ledger, which keeps demo narratives and tests stable.
const seedRandSource = 42

// Seed replaces the ledger with six months of simulated data: five expense
// categories with payroll growth, two revenue sources, an iterated cash
// balance and three outstanding receivables.
func Seed(ctx context.Context, s Store, now time.Time) error {
	rng := rand.New(rand.NewSource(seedRandSource))

	months := make([]string, 0, 6)
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 5; i >= 0; i-- {
		months = append(months, base.AddDate(0, -i, 0).Format("2006-01"))
	}

	jitter := func(spread int) float64 {
		return float64(rng.Intn(2*spread) - spread)
	}

	var expenses []store.ExpenseRecord
	var revenue []store.RevenueRecord
	var cash []store.CashRecord

	balance := 700000.0
	for i, m := range months {
		byCategory := map[string]float64{
			"Payroll":   220000 + float64(i)*12000 + jitter(5000),
			"Marketing": 40000 + jitter(8000),
			"SaaS":      28000 + jitter(3000),
			"Ops":       16000 + jitter(2000),
			"Other":     8000 + jitter(2000),
		}
		categories := maps.Keys(byCategory)
		sort.Strings(categories)

		var monthExpenses float64
		for _, cat := range categories {
			amount := byCategory[cat]
			monthExpenses += amount
			expenses = append(expenses, store.ExpenseRecord{Period: m, Category: cat, Amount: amount})
		}

		product := 250000 + float64(i)*8000 + jitter(7000)
		services := 40000 + jitter(5000)
		revenue = append(revenue,
			store.RevenueRecord{Period: m, Source: "Product", Amount: product},
			store.RevenueRecord{Period: m, Source: "Services", Amount: services},
		)

		inflow := product + services + jitter(5000)
		outflow := monthExpenses + jitter(5000)
		if shock := jitter(20000); shock > 0 {
			inflow += shock * 0.5
		} else {
			outflow += -shock * 0.5
		}
		balance += inflow - outflow
		if balance < 0 {
			balance = 0
		}
		cash = append(cash, store.CashRecord{Period: m, CashIn: inflow, CashOut: outflow, Balance: balance})
	}

	receivables := []store.ReceivableRecord{
		{ID: "INV-101", Amount: 150000, DaysPastDue: 12, Status: "unpaid"},
		{ID: "INV-102", Amount: 80000, DaysPastDue: 40, Status: "unpaid"},
		{ID: "INV-103", Amount: 45000, DaysPastDue: 5, Status: "unpaid"},
	}

	if err := s.ReplaceAll(ctx, expenses, revenue, cash, receivables); err != nil {
		return fmt.Errorf("seed ledger: %w", err)
	}
	return nil
}
