package domain

// DimensionEntry is one dimension's amount for a single period.
type DimensionEntry struct {
	Key    string
	Amount float64
}

// DimensionedSeries holds the per-dimension breakdown of a metric for
// exactly one period. Order is the source order and is preserved through
// the attribution join, which makes ranking tie-breaks deterministic.
type DimensionedSeries []DimensionEntry

func (s DimensionedSeries) Total() float64 {
	var total float64
	for _, e := range s {
		total += e.Amount
	}
	return total
}

// DimensionDelta is the movement of one dimension between two periods.
type DimensionDelta struct {
	Previous        float64
	Current         float64
	Delta           float64
	ContributionPct float64
}

// AttributionResult decomposes a metric's change into per-dimension
// contributions. Ranked holds the top-n dimension keys by |Delta|
// descending; Deltas keeps every dimension for traceability.
type AttributionResult struct {
	Deltas     map[string]DimensionDelta
	Ranked     []string
	TotalDelta float64
}

// CausalNarrative is a finalized explanation sentence together with the
// structured signal and attribution it was derived from. The structures
// are kept for audit; the text is never re-parsed.
type CausalNarrative struct {
	Metric      string
	Text        string
	Signal      *Signal
	Attribution *AttributionResult
}
