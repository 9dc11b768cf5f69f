package adapters

import (
	"math"

	"github.com/fin-tools/finsight/pkg/models/api"
	"github.com/fin-tools/finsight/pkg/models/domain"
	storemodels "github.com/fin-tools/finsight/pkg/models/store"
)

// MapSignalDomainToApi converts a detection signal for transport. JSON has
// no encoding for +Inf, so zero-baseline moves carry a nil percent change
// and an explicit marker instead.
func MapSignalDomainToApi(s *domain.Signal) *api.Signal {
	if s == nil {
		return nil
	}
	out := &api.Signal{
		Metric:         s.Metric,
		PreviousValue:  s.PreviousValue,
		CurrentValue:   s.CurrentValue,
		AbsoluteChange: s.AbsoluteChange,
		Severity:       api.Severity(s.Severity),
	}
	if math.IsInf(s.PercentChange, 0) {
		out.FromZeroBase = true
	} else {
		pct := s.PercentChange
		out.PercentChange = &pct
	}
	return out
}

func MapAttributionDomainToApi(a *domain.AttributionResult) *api.AttributionResult {
	if a == nil {
		return nil
	}
	out := &api.AttributionResult{
		Deltas:     make(map[string]api.DimensionDelta, len(a.Deltas)),
		Ranked:     append([]string(nil), a.Ranked...),
		TotalDelta: a.TotalDelta,
	}
	for key, d := range a.Deltas {
		out.Deltas[key] = api.DimensionDelta{
			Previous:        d.Previous,
			Current:         d.Current,
			Delta:           d.Delta,
			ContributionPct: d.ContributionPct,
		}
	}
	return out
}

func MapKpiSnapshotDomainToApi(k domain.KpiSnapshot) api.KpiSnapshot {
	out := api.KpiSnapshot{
		PeriodCurrent:  k.PeriodCurrent,
		PeriodPrevious: k.PeriodPrevious,
		Burn:           api.MoneyPair{Current: k.Burn.Current, Previous: k.Burn.Previous},
		Revenue:        api.RevenueKpi{Current: k.Revenue.Current, Previous: k.Revenue.Previous},
		ProfitLoss:     api.ProfitLoss{Amount: k.ProfitLoss.Amount, Status: string(k.ProfitLoss.Status)},
		CashBalance:    k.CashBalance,
		RunwayMonths:   k.RunwayMonths,
	}
	if !math.IsInf(k.Revenue.GrowthPct, 0) {
		growth := k.Revenue.GrowthPct
		out.Revenue.GrowthPct = &growth
	}
	return out
}

func MapReasoningResultDomainToApi(r *domain.ReasoningResult) api.ReasoningResult {
	out := api.ReasoningResult{
		Kpis:        MapKpiSnapshotDomainToApi(r.Kpis),
		Causes:      append([]string(nil), r.Causes...),
		Predictions: append([]string(nil), r.Predictions...),
		Details:     make(map[string]api.MetricDetail, len(r.Details)),
	}
	for metric, narrative := range r.Details {
		out.Details[metric] = api.MetricDetail{
			Narrative:   narrative.Text,
			Signal:      MapSignalDomainToApi(narrative.Signal),
			Attribution: MapAttributionDomainToApi(narrative.Attribution),
		}
	}
	return out
}

func MapProjectionDomainToApi(p domain.Projection) api.Projection {
	return api.Projection{
		Burn:         p.Burn,
		Revenue:      p.Revenue,
		RunwayMonths: p.RunwayMonths,
		Profit:       p.Profit,
	}
}

func MapWhatIfResultDomainToApi(r *domain.WhatIfResult) *api.WhatIfResult {
	if r == nil {
		return nil
	}
	return &api.WhatIfResult{
		Scenario: api.Scenario{
			Target:    string(r.Scenario.Target),
			Direction: string(r.Scenario.Direction),
			Percent:   r.Scenario.Percent,
		},
		Baseline:  MapProjectionDomainToApi(r.Baseline),
		Projected: MapProjectionDomainToApi(r.Projected),
	}
}

func MapChatReplyDomainToApi(r *domain.ChatReply) api.ChatReply {
	out := api.ChatReply{
		Answer:     r.Answer,
		Intent:     string(r.Intent),
		Simulation: MapWhatIfResultDomainToApi(r.Simulation),
	}
	if r.Reasoning != nil {
		reasoning := MapReasoningResultDomainToApi(r.Reasoning)
		out.Reasoning = &reasoning
	}
	return out
}

func MapNudgeDomainToApi(n domain.Nudge) api.Nudge {
	return api.Nudge{
		Severity: api.Severity(n.Severity),
		Message:  n.Message,
	}
}

func MapAlertRecordStoreToApi(r storemodels.AlertRecord) api.Alert {
	return api.Alert{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		Severity:  api.Severity(r.Severity),
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}
