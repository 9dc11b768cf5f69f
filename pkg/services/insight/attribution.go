package insight

import (
	"math"
	"sort"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// DefaultTopDrivers is the number of ranked dimensions surfaced in
// narratives.
const DefaultTopDrivers = 3

// contributionEpsilon guards the contribution division when per-dimension
// changes cancel out to a near-zero total.
const contributionEpsilon = 1e-9

// Attribute outer-joins two dimensioned series and decomposes the total
// change into per-dimension contributions. A dimension missing from either
// period counts as zero on that side, so new and removed dimensions show
// up as contributors. Ranking is by |delta| descending; ties keep the
// join's insertion order (previous-period order first, then current-only
// dimensions).
func Attribute(previous, current domain.DimensionedSeries, topN int) domain.AttributionResult {
	type row struct {
		key  string
		prev float64
		curr float64
	}

	index := make(map[string]int, len(previous))
	rows := make([]row, 0, len(previous)+len(current))
	for _, e := range previous {
		if i, ok := index[e.Key]; ok {
			rows[i].prev += e.Amount
			continue
		}
		index[e.Key] = len(rows)
		rows = append(rows, row{key: e.Key, prev: e.Amount})
	}
	for _, e := range current {
		if i, ok := index[e.Key]; ok {
			rows[i].curr += e.Amount
			continue
		}
		index[e.Key] = len(rows)
		rows = append(rows, row{key: e.Key, curr: e.Amount})
	}

	var totalDelta float64
	for _, r := range rows {
		totalDelta += r.curr - r.prev
	}

	deltas := make(map[string]domain.DimensionDelta, len(rows))
	ranked := make([]string, len(rows))
	for i, r := range rows {
		delta := r.curr - r.prev
		var contrib float64
		if math.Abs(totalDelta) > contributionEpsilon {
			contrib = delta / totalDelta * 100
		}
		deltas[r.key] = domain.DimensionDelta{
			Previous:        r.prev,
			Current:         r.curr,
			Delta:           delta,
			ContributionPct: contrib,
		}
		ranked[i] = r.key
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(deltas[ranked[i]].Delta) > math.Abs(deltas[ranked[j]].Delta)
	})

	if topN < 0 {
		topN = 0
	}
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return domain.AttributionResult{
		Deltas:     deltas,
		Ranked:     ranked,
		TotalDelta: totalDelta,
	}
}
