package api

type ChatRequest struct {
	Query string `json:"query"`
}

type ChatReply struct {
	Answer     string           `json:"answer"`
	Intent     string           `json:"intent"`
	Reasoning  *ReasoningResult `json:"reasoning,omitempty"`
	Simulation *WhatIfResult    `json:"simulation,omitempty"`
}

type Scenario struct {
	Target    string  `json:"target"`
	Direction string  `json:"direction"`
	Percent   float64 `json:"percent"`
}

type Projection struct {
	Burn         float64  `json:"burn"`
	Revenue      float64  `json:"revenue"`
	RunwayMonths *float64 `json:"runway_months"`
	Profit       float64  `json:"profit"`
}

type WhatIfResult struct {
	Scenario  Scenario   `json:"scenario"`
	Baseline  Projection `json:"baseline"`
	Projected Projection `json:"projected"`
}
