package chat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/insight"
	"github.com/fin-tools/finsight/pkg/services/whatif"
)

// Reasoner is the slice of the reasoning orchestrator the router needs.
type Reasoner interface {
	ReasonLatest(ctx context.Context) (*domain.ReasoningResult, error)
}

// Simulator runs a parsed what-if scenario.
type Simulator interface {
	Run(ctx context.Context, sc domain.Scenario) (*domain.WhatIfResult, error)
}

type rule struct {
	intent domain.Intent
	match  func(q string, words map[string]bool) bool
}

// rules is the intent decision list. First match wins, so order defines
// precedence; summary is the fallback when nothing matches.
var rules = []rule{
	{domain.IntentWhatIf, matchWhatIf},
	{domain.IntentWhy, matchAny("why", "what happened")},
	{domain.IntentRunway, matchAny("runway", "how long")},
	{domain.IntentBurn, matchAny("burn", "spend")},
	{domain.IntentRevenue, matchAny("revenue", "growth")},
	{domain.IntentCash, matchAny("cash", "inflow", "outflow")},
	{domain.IntentProfit, matchAny("profit", "loss")},
}

// Classify maps a free-text query onto the first matching intent.
func Classify(query string) domain.Intent {
	q := strings.ToLower(query)
	words := queryWords(q)
	for _, r := range rules {
		if r.match(q, words) {
			return r.intent
		}
	}
	return domain.IntentSummary
}

// matchAny matches whole words; multi-word terms match as substrings of
// the normalized query.
func matchAny(terms ...string) func(string, map[string]bool) bool {
	return func(q string, words map[string]bool) bool {
		for _, t := range terms {
			if strings.Contains(t, " ") {
				if strings.Contains(q, t) {
					return true
				}
			} else if words[t] {
				return true
			}
		}
		return false
	}
}

func matchWhatIf(q string, words map[string]bool) bool {
	if strings.Contains(q, "what if") {
		return true
	}
	return words["if"] && hasPercentFigure(q)
}

func hasPercentFigure(q string) bool {
	for i, r := range q {
		if r == '%' && i > 0 && unicode.IsDigit(rune(q[i-1])) {
			return true
		}
	}
	return strings.Contains(q, "percent")
}

func queryWords(q string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = true
	}
	return words
}

// Router classifies free-text queries and dispatches to the reasoning
// orchestrator or the what-if simulator, formatting a plain-text answer
// alongside the structured result.
type Router struct {
	reasoner  Reasoner
	simulator Simulator
	money     insight.Money
}

func NewRouter(reasoner Reasoner, simulator Simulator, currencySymbol string) *Router {
	return &Router{
		reasoner:  reasoner,
		simulator: simulator,
		money:     insight.NewMoney(currencySymbol),
	}
}

func (rt *Router) Handle(ctx context.Context, query string) (*domain.ChatReply, error) {
	intent := Classify(query)

	if intent == domain.IntentWhatIf {
		return rt.handleWhatIf(ctx, query)
	}

	result, err := rt.reasoner.ReasonLatest(ctx)
	if err != nil {
		return nil, err
	}

	reply := &domain.ChatReply{Intent: intent, Reasoning: result}
	k := result.Kpis
	switch intent {
	case domain.IntentWhy:
		reply.Answer = rt.formatWhy(result)
	case domain.IntentRunway:
		if k.RunwayMonths != nil {
			reply.Answer = fmt.Sprintf("Estimated runway: %.2f months.", *k.RunwayMonths)
		} else {
			reply.Answer = "Runway cannot be computed (monthly burn is zero or negative)."
		}
	case domain.IntentBurn:
		reply.Answer = fmt.Sprintf("Monthly burn is %s (prev %s).",
			rt.money.Format(k.Burn.Current), rt.money.Format(k.Burn.Previous))
	case domain.IntentRevenue:
		reply.Answer = fmt.Sprintf("Revenue this period is %s (growth %s).",
			rt.money.Format(k.Revenue.Current), formatGrowth(k.Revenue.GrowthPct))
	case domain.IntentCash:
		reply.Answer = fmt.Sprintf("Latest cash balance is %s. See the cash in/out trend for details.",
			rt.money.Format(k.CashBalance))
	case domain.IntentProfit:
		reply.Answer = fmt.Sprintf("Profit/loss this period: %s. Status: %s.",
			rt.money.Format(k.ProfitLoss.Amount), k.ProfitLoss.Status)
	default:
		reply.Answer = rt.formatSummary(k)
	}
	return reply, nil
}

func (rt *Router) handleWhatIf(ctx context.Context, query string) (*domain.ChatReply, error) {
	reply := &domain.ChatReply{Intent: domain.IntentWhatIf}

	sc, err := whatif.Parse(query)
	if err != nil {
		reply.Answer = "I couldn't parse the what-if scenario. Try: 'What if expenses increase by 10%?'"
		return reply, nil
	}

	sim, err := rt.simulator.Run(ctx, sc)
	if err != nil {
		if errors.Is(err, whatif.ErrUnsupportedTarget) {
			reply.Answer = fmt.Sprintf("I can only simulate expense or revenue scenarios, not %q.", sc.Target)
			return reply, nil
		}
		return nil, err
	}

	reply.Simulation = sim
	reply.Answer = fmt.Sprintf(
		"Scenario: %s %s by %.1f%%.\nBaseline - %s\nProjected - %s",
		sc.Target, sc.Direction, sc.Percent*100,
		rt.formatProjection(sim.Baseline), rt.formatProjection(sim.Projected))
	return reply, nil
}

func (rt *Router) formatProjection(p domain.Projection) string {
	return fmt.Sprintf("Burn: %s, Revenue: %s, Runway: %s, Profit: %s.",
		rt.money.Format(p.Burn), rt.money.Format(p.Revenue),
		formatRunway(p.RunwayMonths), rt.money.Format(p.Profit))
}

func (rt *Router) formatWhy(result *domain.ReasoningResult) string {
	var b strings.Builder
	if len(result.Causes) > 0 {
		b.WriteString("Causes:")
		for _, c := range result.Causes {
			b.WriteString("\n- " + c)
		}
	} else {
		b.WriteString("No immediate dominant cause detected from period-to-period comparisons.")
	}
	if len(result.Predictions) > 0 {
		b.WriteString("\n\nPredictions:")
		for _, p := range result.Predictions {
			b.WriteString("\n- " + p)
		}
	}
	return b.String()
}

func (rt *Router) formatSummary(k domain.KpiSnapshot) string {
	return fmt.Sprintf("Runway: %s. Burn: %s. Revenue: %s.",
		formatRunway(k.RunwayMonths),
		rt.money.Format(k.Burn.Current), rt.money.Format(k.Revenue.Current))
}

func formatRunway(months *float64) string {
	if months == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f months", *months)
}

func formatGrowth(pct float64) string {
	if math.IsInf(pct, 0) || math.IsNaN(pct) {
		return "n/a (zero base)"
	}
	return fmt.Sprintf("%.1f%%", pct*100)
}
