package domain

type ScenarioTarget string

const (
	TargetExpenses ScenarioTarget = "expenses"
	TargetRevenue  ScenarioTarget = "revenue"
	TargetCash     ScenarioTarget = "cash"
)

type ScenarioDirection string

const (
	DirectionIncrease ScenarioDirection = "increase"
	DirectionDecrease ScenarioDirection = "decrease"
)

// Scenario is a parsed what-if hypothesis. Percent is the fractional
// magnitude, e.g. 0.10 for a 10% move. Immutable once constructed.
type Scenario struct {
	Target    ScenarioTarget
	Direction ScenarioDirection
	Percent   float64
}

// Projection is one side (baseline or projected) of a what-if simulation.
type Projection struct {
	Burn         float64
	Revenue      float64
	RunwayMonths *float64
	Profit       float64
}

type WhatIfResult struct {
	Scenario  Scenario
	Baseline  Projection
	Projected Projection
}
