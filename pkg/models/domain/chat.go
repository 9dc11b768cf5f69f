package domain

type Intent string

const (
	IntentWhatIf  Intent = "what_if"
	IntentWhy     Intent = "why"
	IntentRunway  Intent = "runway"
	IntentBurn    Intent = "burn"
	IntentRevenue Intent = "revenue"
	IntentCash    Intent = "cash"
	IntentProfit  Intent = "profit"
	IntentSummary Intent = "summary"
)

// ChatReply is the structured answer to a free-text query. Exactly one of
// Reasoning/Simulation is populated depending on the matched intent.
type ChatReply struct {
	Answer     string
	Intent     Intent
	Reasoning  *ReasoningResult
	Simulation *WhatIfResult
}
