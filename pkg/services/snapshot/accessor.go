package snapshot

import (
	"context"
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// Accessor supplies the period-keyed financial series the engine reasons
// about. Implementations must support concurrent reads; every call is
// treated as a fresh, internally consistent snapshot.
type Accessor interface {
	// Periods returns the known periods in chronological order.
	Periods(ctx context.Context) ([]string, error)
	Expenses(ctx context.Context, period string) (domain.DimensionedSeries, error)
	Revenue(ctx context.Context, period string) (domain.DimensionedSeries, error)
	CashSeries(ctx context.Context) ([]domain.CashEntry, error)
	Receivables(ctx context.Context) ([]domain.Receivable, error)
}

// LatestPeriods resolves the comparison pair from the ordered period list:
// current is the last period, previous the second-to-last. With a single
// known period both sides are that period.
func LatestPeriods(ctx context.Context, a Accessor) (current, previous string, err error) {
	periods, err := a.Periods(ctx)
	if err != nil {
		return "", "", fmt.Errorf("list periods: %w", err)
	}
	if len(periods) == 0 {
		return "", "", fmt.Errorf("no periods available")
	}
	current = periods[len(periods)-1]
	previous = current
	if len(periods) >= 2 {
		previous = periods[len(periods)-2]
	}
	return current, previous, nil
}
