package insight

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money renders currency amounts with grouped digits for narratives,
// e.g. "₹1,250,000".
type Money struct {
	symbol  string
	printer *message.Printer
}

func NewMoney(symbol string) Money {
	return Money{symbol: symbol, printer: message.NewPrinter(language.English)}
}

func (m Money) Format(v float64) string {
	if v < 0 {
		return m.printer.Sprintf("-%s%v", m.symbol, number.Decimal(-v, number.MaxFractionDigits(0)))
	}
	return m.printer.Sprintf("%s%v", m.symbol, number.Decimal(v, number.MaxFractionDigits(0)))
}

// formatPct renders a fractional change as a percentage. Zero-baseline
// moves carry +Inf and are rendered the way they are detected, as "inf%".
func formatPct(p float64) string {
	if math.IsInf(p, 0) {
		return "inf%"
	}
	return fmt.Sprintf("%.1f%%", p*100)
}
