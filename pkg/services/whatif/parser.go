package whatif

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// ParseFailure enumerates the ways a query can fail to yield a scenario.
type ParseFailure string

const (
	FailureNoClause    ParseFailure = "no_scenario_clause"
	FailureNoTarget    ParseFailure = "no_target"
	FailureBadTarget   ParseFailure = "unknown_target"
	FailureNoPercent   ParseFailure = "no_percent"
	FailureUnknownWord ParseFailure = "unknown_word"
)

// ParseError is a typed parse failure; callers can branch on Reason
// instead of guessing which part of the grammar fell through.
type ParseError struct {
	Reason ParseFailure
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("what-if parse failed: %s", e.Reason)
}

var targetAliases = map[string]domain.ScenarioTarget{
	"expenses": domain.TargetExpenses,
	"expense":  domain.TargetExpenses,
	"burn":     domain.TargetExpenses,
	"revenue":  domain.TargetRevenue,
	"revenues": domain.TargetRevenue,
	"cash":     domain.TargetCash,
}

var increaseWords = map[string]bool{
	"increase": true, "increases": true, "increased": true,
	"rise": true, "rises": true, "rose": true,
}

var decreaseWords = map[string]bool{
	"decrease": true, "decreases": true, "decreased": true,
	"drop": true, "drops": true, "dropped": true,
	"fall": true, "falls": true, "fell": true,
	"shrink": true, "shrinks": true,
}

// Parse recognizes "what if <target> <direction> <pct>%" and
// "if <target> <direction> by <pct>%". The direction word is optional and
// defaults to decrease; only increase-family words map to an increase.
// Any other word between the target and the number rejects the query,
// so an unrecognized verb never gets the decrease default guessed for it.
func Parse(query string) (domain.Scenario, error) {
	tokens := tokenize(query)

	clause := -1
	for i, tok := range tokens {
		if tok == "if" {
			clause = i + 1
			break
		}
	}
	if clause < 0 || clause >= len(tokens) {
		return domain.Scenario{}, &ParseError{Reason: FailureNoClause}
	}

	target, ok := targetAliases[tokens[clause]]
	if !ok {
		// The clause names something the grammar does not track.
		if isKnownWord(tokens[clause]) {
			return domain.Scenario{}, &ParseError{Reason: FailureNoTarget}
		}
		return domain.Scenario{}, &ParseError{Reason: FailureBadTarget}
	}

	direction := domain.DirectionDecrease
	for i := clause + 1; i < len(tokens); i++ {
		tok := tokens[i]
		if increaseWords[tok] {
			direction = domain.DirectionIncrease
			continue
		}
		if decreaseWords[tok] || tok == "by" {
			continue
		}
		v, isNumber := parseNumber(tok)
		if !isNumber {
			return domain.Scenario{}, &ParseError{Reason: FailureUnknownWord}
		}
		if v < 0 {
			return domain.Scenario{}, &ParseError{Reason: FailureNoPercent}
		}
		return domain.Scenario{Target: target, Direction: direction, Percent: v / 100}, nil
	}
	return domain.Scenario{}, &ParseError{Reason: FailureNoPercent}
}

func tokenize(query string) []string {
	q := strings.ToLower(query)
	return strings.FieldsFunc(q, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', ',', '?', '!', ';', ':', '"', '\'':
			return true
		}
		return false
	})
}

// parseNumber accepts "10", "10%", "10.5%". The sign is the caller's
// problem: a negative figure is still a number, just not a valid percent.
func parseNumber(tok string) (float64, bool) {
	tok = strings.TrimSuffix(tok, "%")
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isKnownWord(tok string) bool {
	return increaseWords[tok] || decreaseWords[tok] || tok == "by"
}
