package insight

import (
	"math"
	"time"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

// DefaultThresholdPct is the reporting gate: movements below 10% are not
// considered significant.
const DefaultThresholdPct = 0.10

// Detector classifies a metric's period-over-period movement as
// non-significant (nil) or significant with a severity bucket.
type Detector struct {
	ThresholdPct float64
}

func NewDetector(thresholdPct float64) *Detector {
	if thresholdPct <= 0 {
		thresholdPct = DefaultThresholdPct
	}
	return &Detector{ThresholdPct: thresholdPct}
}

// Detect is pure and never fails. A move from a zero baseline cannot be
// expressed as a ratio and is always reported with PercentChange = +Inf
// and high severity.
func (d *Detector) Detect(metric string, previous, current float64) *domain.Signal {
	if previous == 0 {
		if current == 0 {
			return nil
		}
		return &domain.Signal{
			Metric:         metric,
			PreviousValue:  previous,
			CurrentValue:   current,
			AbsoluteChange: current - previous,
			PercentChange:  math.Inf(1),
			Severity:       domain.SeverityHigh,
			DetectedAt:     time.Now().UTC(),
		}
	}

	diff := current - previous
	pct := diff / previous
	if math.Abs(pct) < d.ThresholdPct {
		return nil
	}

	return &domain.Signal{
		Metric:         metric,
		PreviousValue:  previous,
		CurrentValue:   current,
		AbsoluteChange: diff,
		PercentChange:  pct,
		Severity:       severityFor(math.Abs(pct)),
		DetectedAt:     time.Now().UTC(),
	}
}

// severityFor buckets an absolute percent change. The low tier is not
// reachable while the default 0.10 gate is in place; it is kept so callers
// running with a lower threshold still get a meaningful bucket.
func severityFor(absPct float64) domain.Severity {
	switch {
	case absPct >= 0.25:
		return domain.SeverityHigh
	case absPct >= 0.10:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
