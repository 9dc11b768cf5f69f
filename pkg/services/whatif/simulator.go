package whatif

import (
	"context"
	"errors"
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/insight"
	"github.com/fin-tools/finsight/pkg/services/snapshot"
)

// ErrUnsupportedTarget marks a scenario whose target parses but cannot be
// projected linearly (e.g. cash). Callers get an explicit error, never a
// guessed default.
var ErrUnsupportedTarget = errors.New("what-if target not supported for simulation")

// Simulator projects the linear impact of a scenario on burn, revenue,
// runway and profit. The baseline goes through insight.ComputeKPIs, the
// same path the reasoner uses, so the two can never drift apart.
type Simulator struct {
	accessor snapshot.Accessor
}

func NewSimulator(accessor snapshot.Accessor) *Simulator {
	return &Simulator{accessor: accessor}
}

func (s *Simulator) Run(ctx context.Context, sc domain.Scenario) (*domain.WhatIfResult, error) {
	current, previous, err := snapshot.LatestPeriods(ctx, s.accessor)
	if err != nil {
		return nil, err
	}
	kpis, err := insight.ComputeKPIs(ctx, s.accessor, current, previous)
	if err != nil {
		return nil, err
	}

	factor := 1 + sc.Percent
	if sc.Direction == domain.DirectionDecrease {
		factor = 1 - sc.Percent
	}

	burn := kpis.Burn.Current
	revenue := kpis.Revenue.Current

	projectedBurn := burn
	projectedRevenue := revenue
	switch sc.Target {
	case domain.TargetExpenses:
		projectedBurn = burn * factor
	case domain.TargetRevenue:
		projectedRevenue = revenue * factor
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTarget, sc.Target)
	}

	return &domain.WhatIfResult{
		Scenario:  sc,
		Baseline:  project(burn, revenue, kpis.CashBalance),
		Projected: project(projectedBurn, projectedRevenue, kpis.CashBalance),
	}, nil
}

func project(burn, revenue, balance float64) domain.Projection {
	p := domain.Projection{
		Burn:    burn,
		Revenue: revenue,
		Profit:  revenue - burn,
	}
	if burn > 0 {
		runway := balance / burn
		p.RunwayMonths = &runway
	}
	return p
}
