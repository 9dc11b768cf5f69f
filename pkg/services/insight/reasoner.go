package insight

import (
	"context"
	"fmt"
	"math"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/snapshot"
	"github.com/rs/zerolog"
)

// Metric names used as keys in ReasoningResult.Details.
const (
	MetricBurn    = "burn"
	MetricRevenue = "revenue"
	MetricCash    = "cash"
)

// Config tunes the reasoner; zero values fall back to the defaults the
// product ships with.
type Config struct {
	ThresholdPct   float64
	TopDrivers     int
	CurrencySymbol string
}

// Reasoner computes the KPI snapshot for a period pair and assembles
// causes, predictions and per-metric causal detail. It holds no mutable
// state; concurrent invocations are independent.
type Reasoner struct {
	accessor  snapshot.Accessor
	detector  *Detector
	explainer *Explainer
	money     Money
	topN      int
}

func NewReasoner(accessor snapshot.Accessor, cfg Config) *Reasoner {
	if cfg.TopDrivers <= 0 {
		cfg.TopDrivers = DefaultTopDrivers
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = "₹"
	}
	return &Reasoner{
		accessor:  accessor,
		detector:  NewDetector(cfg.ThresholdPct),
		explainer: NewExplainer(cfg.CurrencySymbol),
		money:     NewMoney(cfg.CurrencySymbol),
		topN:      cfg.TopDrivers,
	}
}

// ComputeKPIs builds the KPI snapshot straight from the accessor. It is the
// single KPI computation path: the what-if simulator goes through it too,
// so simulation baselines cannot drift from reasoning output.
func ComputeKPIs(
	ctx context.Context,
	accessor snapshot.Accessor,
	periodCurrent, periodPrevious string,
) (domain.KpiSnapshot, error) {
	expCurr, err := accessor.Expenses(ctx, periodCurrent)
	if err != nil {
		return domain.KpiSnapshot{}, fmt.Errorf("load current expenses: %w", err)
	}
	expPrev, err := accessor.Expenses(ctx, periodPrevious)
	if err != nil {
		return domain.KpiSnapshot{}, fmt.Errorf("load previous expenses: %w", err)
	}
	revCurr, err := accessor.Revenue(ctx, periodCurrent)
	if err != nil {
		return domain.KpiSnapshot{}, fmt.Errorf("load current revenue: %w", err)
	}
	revPrev, err := accessor.Revenue(ctx, periodPrevious)
	if err != nil {
		return domain.KpiSnapshot{}, fmt.Errorf("load previous revenue: %w", err)
	}
	cash, err := accessor.CashSeries(ctx)
	if err != nil {
		return domain.KpiSnapshot{}, fmt.Errorf("load cash series: %w", err)
	}

	burnCurr := expCurr.Total()
	burnPrev := expPrev.Total()
	revenueCurr := revCurr.Total()
	revenuePrev := revPrev.Total()

	growth := 0.0
	if revenuePrev == 0 {
		if revenueCurr != 0 {
			growth = math.Inf(1)
		}
	} else {
		growth = (revenueCurr - revenuePrev) / revenuePrev
	}

	var balance float64
	if len(cash) > 0 {
		balance = cash[len(cash)-1].Balance
	}

	profit := revenueCurr - burnCurr
	status := domain.ProfitStatusProfit
	if profit < 0 {
		status = domain.ProfitStatusLoss
	}

	kpis := domain.KpiSnapshot{
		PeriodCurrent:  periodCurrent,
		PeriodPrevious: periodPrevious,
		Burn:           domain.MoneyPair{Current: burnCurr, Previous: burnPrev},
		Revenue:        domain.RevenueKpi{Current: revenueCurr, Previous: revenuePrev, GrowthPct: growth},
		ProfitLoss:     domain.ProfitLoss{Amount: profit, Status: status},
		CashBalance:    balance,
	}
	if burnCurr > 0 {
		runway := balance / burnCurr
		kpis.RunwayMonths = &runway
	}
	return kpis, nil
}

// ReasonLatest resolves the last two known periods and reasons over them.
func (r *Reasoner) ReasonLatest(ctx context.Context) (*domain.ReasoningResult, error) {
	current, previous, err := snapshot.LatestPeriods(ctx, r.accessor)
	if err != nil {
		return nil, err
	}
	return r.Reason(ctx, current, previous)
}

// Reason runs detection, attribution and explanation for burn, revenue and
// cash balance, then assembles causes and template predictions. A failure
// inside the cash-attribution branch is logged and that branch omitted;
// the other metrics' results are still returned.
func (r *Reasoner) Reason(ctx context.Context, periodCurrent, periodPrevious string) (*domain.ReasoningResult, error) {
	kpis, err := ComputeKPIs(ctx, r.accessor, periodCurrent, periodPrevious)
	if err != nil {
		return nil, err
	}

	causes := make([]string, 0, 3)
	details := make(map[string]domain.CausalNarrative, 3)

	if sig := r.detector.Detect("burn_rate", kpis.Burn.Previous, kpis.Burn.Current); sig != nil {
		narrative, err := r.explainDimensioned(ctx, MetricBurn, "burn rate", sig,
			func(ctx context.Context, period string) (domain.DimensionedSeries, error) {
				return r.accessor.Expenses(ctx, period)
			}, periodCurrent, periodPrevious)
		if err != nil {
			return nil, err
		}
		causes = append(causes, narrative.Text)
		details[MetricBurn] = narrative
	}

	if sig := r.detector.Detect("revenue", kpis.Revenue.Previous, kpis.Revenue.Current); sig != nil {
		narrative, err := r.explainDimensioned(ctx, MetricRevenue, "revenue", sig,
			func(ctx context.Context, period string) (domain.DimensionedSeries, error) {
				return r.accessor.Revenue(ctx, period)
			}, periodCurrent, periodPrevious)
		if err != nil {
			return nil, err
		}
		causes = append(causes, narrative.Text)
		details[MetricRevenue] = narrative
	}

	if narrative, ok := r.explainCash(ctx); ok {
		causes = append(causes, narrative.Text)
		details[MetricCash] = narrative
	}

	if kpis.ProfitLoss.Amount < 0 && len(causes) == 0 {
		causes = append(causes, r.fallbackCause(kpis))
	}

	return &domain.ReasoningResult{
		Kpis:        kpis,
		Causes:      causes,
		Predictions: r.predictions(kpis),
		Details:     details,
	}, nil
}

type seriesFn func(ctx context.Context, period string) (domain.DimensionedSeries, error)

func (r *Reasoner) explainDimensioned(
	ctx context.Context,
	metric, displayName string,
	sig *domain.Signal,
	series seriesFn,
	periodCurrent, periodPrevious string,
) (domain.CausalNarrative, error) {
	prev, err := series(ctx, periodPrevious)
	if err != nil {
		return domain.CausalNarrative{}, fmt.Errorf("load %s breakdown (%s): %w", metric, periodPrevious, err)
	}
	curr, err := series(ctx, periodCurrent)
	if err != nil {
		return domain.CausalNarrative{}, fmt.Errorf("load %s breakdown (%s): %w", metric, periodCurrent, err)
	}
	attr := Attribute(prev, curr, r.topN)
	return domain.CausalNarrative{
		Metric:      metric,
		Text:        r.explainer.Summarize(displayName, sig, &attr),
		Signal:      sig,
		Attribution: &attr,
	}, nil
}

// explainCash attributes a cash-balance move to a synthetic
// {overdue_receivables, other} split. Any failure here only suppresses the
// cash narrative.
func (r *Reasoner) explainCash(ctx context.Context) (domain.CausalNarrative, bool) {
	logger := zerolog.Ctx(ctx)

	cash, err := r.accessor.CashSeries(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("cash narrative skipped: cash series unavailable")
		return domain.CausalNarrative{}, false
	}
	if len(cash) < 2 {
		return domain.CausalNarrative{}, false
	}

	prevBalance := cash[len(cash)-2].Balance
	currBalance := cash[len(cash)-1].Balance
	sig := r.detector.Detect("cash_balance", prevBalance, currBalance)
	if sig == nil {
		return domain.CausalNarrative{}, false
	}

	receivables, err := r.accessor.Receivables(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("cash narrative skipped: receivables unavailable")
		return domain.CausalNarrative{}, false
	}

	var overdue float64
	for _, rc := range receivables {
		overdue += rc.Amount
	}

	prev := domain.DimensionedSeries{
		{Key: "overdue_receivables", Amount: overdue * 0.9},
		{Key: "other", Amount: prevBalance - overdue*0.9},
	}
	curr := domain.DimensionedSeries{
		{Key: "overdue_receivables", Amount: overdue},
		{Key: "other", Amount: currBalance - overdue},
	}
	attr := Attribute(prev, curr, r.topN)
	return domain.CausalNarrative{
		Metric:      MetricCash,
		Text:        r.explainer.Summarize("cash balance", sig, &attr),
		Signal:      sig,
		Attribution: &attr,
	}, true
}

// fallbackCause covers a negative profit with no above-threshold movement:
// compare the relative expense and revenue moves instead.
func (r *Reasoner) fallbackCause(kpis domain.KpiSnapshot) string {
	if kpis.Burn.Previous == 0 || kpis.Revenue.Previous == 0 {
		return "Profit is negative; check revenue and expenses for anomalies."
	}
	expChange := (kpis.Burn.Current - kpis.Burn.Previous) / kpis.Burn.Previous
	revChange := (kpis.Revenue.Current - kpis.Revenue.Previous) / kpis.Revenue.Previous
	if math.Abs(expChange) > math.Abs(revChange) {
		return fmt.Sprintf("Profit is negative because expenses moved by %s while revenue changed by %s.",
			formatPct(expChange), formatPct(revChange))
	}
	return fmt.Sprintf("Profit is negative primarily due to revenue moving by %s while expenses were stable.",
		formatPct(revChange))
}

func (r *Reasoner) predictions(kpis domain.KpiSnapshot) []string {
	preds := make([]string, 0, 2)
	if kpis.RunwayMonths != nil {
		preds = append(preds, fmt.Sprintf(
			"At current burn (%s/month) and cash balance (%s), estimated runway is %.2f months.",
			r.money.Format(kpis.Burn.Current), r.money.Format(kpis.CashBalance), *kpis.RunwayMonths))
	} else {
		preds = append(preds, "Runway cannot be computed (monthly burn is zero or negative).")
	}
	preds = append(preds, fmt.Sprintf(
		"If current burn continues unchanged, projected balance after one month: %s.",
		r.money.Format(kpis.CashBalance-kpis.Burn.Current)))
	return preds
}
