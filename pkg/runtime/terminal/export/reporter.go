package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"text/template"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// Reporter renders a reasoning result to the console in formatted text.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(result *domain.ReasoningResult) error {
	funcMap := template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"growth": func(pct float64) string {
			if math.IsInf(pct, 0) || math.IsNaN(pct) {
				return "n/a (zero base)"
			}
			return fmt.Sprintf("%.1f%%", pct*100)
		},
		"runway": func(months *float64) string {
			if months == nil {
				return "n/a"
			}
			return fmt.Sprintf("%.1f months", *months)
		},
	}

	tmpl := `
Financial Report: {{.Kpis.PeriodPrevious}} -> {{.Kpis.PeriodCurrent}}

Burn:    {{money .Kpis.Burn.Current}} (was {{money .Kpis.Burn.Previous}})
Revenue: {{money .Kpis.Revenue.Current}} (was {{money .Kpis.Revenue.Previous}}, growth {{growth .Kpis.Revenue.GrowthPct}})
P&L:     {{money .Kpis.ProfitLoss.Amount}} ({{.Kpis.ProfitLoss.Status}})
Cash:    {{money .Kpis.CashBalance}}
Runway:  {{runway .Kpis.RunwayMonths}}

{{if .Causes}}Causes:
{{range .Causes}}- {{.}}
{{end}}{{end}}
{{if .Predictions}}Predictions:
{{range .Predictions}}- {{.}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, result)
}
