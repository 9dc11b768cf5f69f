package snapshot

import (
	"context"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/store/duckdb/ledger"
)

type ledgerAccessor struct {
	store ledger.Store
}

// NewLedgerAccessor adapts the ledger store into the engine-facing
// Accessor.
func NewLedgerAccessor(store ledger.Store) Accessor {
	return &ledgerAccessor{store: store}
}

func (a *ledgerAccessor) Periods(ctx context.Context) ([]string, error) {
	return a.store.Periods(ctx)
}

func (a *ledgerAccessor) Expenses(ctx context.Context, period string) (domain.DimensionedSeries, error) {
	records, err := a.store.Expenses(ctx, period)
	if err != nil {
		return nil, err
	}
	series := make(domain.DimensionedSeries, 0, len(records))
	for _, r := range records {
		series = append(series, domain.DimensionEntry{Key: r.Category, Amount: r.Amount})
	}
	return series, nil
}

func (a *ledgerAccessor) Revenue(ctx context.Context, period string) (domain.DimensionedSeries, error) {
	records, err := a.store.Revenue(ctx, period)
	if err != nil {
		return nil, err
	}
	series := make(domain.DimensionedSeries, 0, len(records))
	for _, r := range records {
		series = append(series, domain.DimensionEntry{Key: r.Source, Amount: r.Amount})
	}
	return series, nil
}

func (a *ledgerAccessor) CashSeries(ctx context.Context) ([]domain.CashEntry, error) {
	records, err := a.store.Cash(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.CashEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, domain.CashEntry{
			Period:  r.Period,
			CashIn:  r.CashIn,
			CashOut: r.CashOut,
			Balance: r.Balance,
		})
	}
	return entries, nil
}

func (a *ledgerAccessor) Receivables(ctx context.Context) ([]domain.Receivable, error) {
	records, err := a.store.UnpaidReceivables(ctx)
	if err != nil {
		return nil, err
	}
	receivables := make([]domain.Receivable, 0, len(records))
	for _, r := range records {
		receivables = append(receivables, domain.Receivable{
			ID:          r.ID,
			Amount:      r.Amount,
			DaysPastDue: r.DaysPastDue,
		})
	}
	return receivables, nil
}
