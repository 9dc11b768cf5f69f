package insight

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// narrativeEpsilon decides when a total delta is too small for driver
// listing and the generic no-dominant-driver sentence is used instead.
const narrativeEpsilon = 1e-6

type recommendation struct {
	keyword string
	text    string
}

// defaultRecommendations is a fixed keyword table matched case-insensitively
// against the names of the top drivers. Entries are evaluated independently;
// several may fire for one narrative.
var defaultRecommendations = []recommendation{
	{"payroll", "Review recent hires and payroll; consider headcount adjustments or contractor conversions."},
	{"saas", "Audit SaaS usage and cut unused licenses."},
	{"marketing", "Re-check campaign spend efficiency before committing the next cycle's budget."},
}

// Explainer renders a detected signal plus its attribution into a
// human-readable causal sentence with heuristic recommendations.
type Explainer struct {
	money Money
	recs  []recommendation
}

func NewExplainer(currencySymbol string) *Explainer {
	return &Explainer{
		money: NewMoney(currencySymbol),
		recs:  defaultRecommendations,
	}
}

// Summarize builds the causal sentence. The direction word comes from the
// sign of the signal's absolute change while each listed driver carries its
// own arrow; the two can disagree when the top driver moves against larger
// offsetting moves elsewhere. That disagreement is kept observable.
func (e *Explainer) Summarize(metricName string, sig *domain.Signal, attr *domain.AttributionResult) string {
	direction := "decreased"
	if sig.AbsoluteChange > 0 {
		direction = "increased"
	}

	if attr == nil || len(attr.Ranked) == 0 || math.Abs(attr.TotalDelta) < narrativeEpsilon {
		return fmt.Sprintf("%s %s by %s (%s). No single dimension dominates the change.",
			capitalize(metricName), direction, formatPct(sig.PercentChange), e.money.Format(sig.AbsoluteChange))
	}

	parts := make([]string, 0, len(attr.Ranked))
	for _, key := range attr.Ranked {
		d := attr.Deltas[key]
		arrow := "↑"
		if d.Delta < 0 {
			arrow = "↓"
		}
		parts = append(parts, fmt.Sprintf("%s %s %s (contrib %.1f%%)",
			key, arrow, e.money.Format(math.Abs(d.Delta)), d.ContributionPct))
	}

	text := fmt.Sprintf("%s %s by %s (%s). Top drivers: %s.",
		capitalize(metricName), direction, formatPct(sig.PercentChange),
		e.money.Format(sig.AbsoluteChange), strings.Join(parts, "; "))

	if recs := e.recommendationsFor(attr.Ranked); len(recs) > 0 {
		text += " Recommendations: " + strings.Join(recs, " ")
	}
	return text
}

func (e *Explainer) recommendationsFor(drivers []string) []string {
	var out []string
	for _, rec := range e.recs {
		for _, d := range drivers {
			if strings.Contains(strings.ToLower(d), rec.keyword) {
				out = append(out, rec.text)
				break
			}
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
