package insight

import (
	"math"
	"testing"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_NoDominantDriver(t *testing.T) {
	explainer := NewExplainer("₹")
	sig := NewDetector(0).Detect("burn_rate", 100000, 125000)
	require.NotNil(t, sig)

	text := explainer.Summarize("burn rate", sig, nil)
	assert.Equal(t, "Burn rate increased by 25.0% (₹25,000). No single dimension dominates the change.", text)
}

func TestSummarize_TopDrivers(t *testing.T) {
	explainer := NewExplainer("₹")
	sig := NewDetector(0).Detect("burn_rate", 120000, 145000)
	require.NotNil(t, sig)

	previous := domain.DimensionedSeries{
		{Key: "Payroll", Amount: 100000},
		{Key: "SaaS", Amount: 20000},
	}
	current := domain.DimensionedSeries{
		{Key: "Payroll", Amount: 120000},
		{Key: "SaaS", Amount: 25000},
	}
	attr := Attribute(previous, current, 3)

	text := explainer.Summarize("burn rate", sig, &attr)
	assert.Equal(t,
		"Burn rate increased by 20.8% (₹25,000). "+
			"Top drivers: Payroll ↑ ₹20,000 (contrib 80.0%); SaaS ↑ ₹5,000 (contrib 20.0%). "+
			"Recommendations: Review recent hires and payroll; consider headcount adjustments or contractor conversions. "+
			"Audit SaaS usage and cut unused licenses.",
		text)
}

func TestSummarize_Decrease(t *testing.T) {
	explainer := NewExplainer("₹")
	sig := NewDetector(0).Detect("revenue", 200000, 150000)
	require.NotNil(t, sig)

	previous := domain.DimensionedSeries{{Key: "Product", Amount: 200000}}
	current := domain.DimensionedSeries{{Key: "Product", Amount: 150000}}
	attr := Attribute(previous, current, 3)

	text := explainer.Summarize("revenue", sig, &attr)
	assert.Contains(t, text, "Revenue decreased by -25.0% (-₹50,000).")
	assert.Contains(t, text, "Product ↓ ₹50,000 (contrib 100.0%)")
	assert.NotContains(t, text, "Recommendations:")
}

// The headline direction follows the metric total while each driver carries
// its own arrow, so a driver can point against the headline.
func TestSummarize_DriverAgainstHeadline(t *testing.T) {
	explainer := NewExplainer("₹")
	sig := NewDetector(0).Detect("burn_rate", 150000, 165000)
	require.NotNil(t, sig)

	previous := domain.DimensionedSeries{
		{Key: "Ops", Amount: 100000},
		{Key: "Cloud", Amount: 50000},
	}
	current := domain.DimensionedSeries{
		{Key: "Ops", Amount: 60000},
		{Key: "Cloud", Amount: 105000},
	}
	attr := Attribute(previous, current, 3)

	text := explainer.Summarize("burn rate", sig, &attr)
	assert.Contains(t, text, "increased")
	assert.Contains(t, text, "Ops ↓ ₹40,000")
}

func TestSummarize_ZeroBaseline(t *testing.T) {
	explainer := NewExplainer("₹")
	sig := NewDetector(0).Detect("revenue", 0, 50000)
	require.NotNil(t, sig)

	text := explainer.Summarize("revenue", sig, nil)
	assert.Equal(t, "Revenue increased by inf% (₹50,000). No single dimension dominates the change.", text)
}

// The detector never emits a zero-change signal, but Summarize is callable
// with one directly; a flat metric reads as "decreased", not "increased".
func TestSummarize_ZeroChangeReadsAsDecrease(t *testing.T) {
	explainer := NewExplainer("₹")
	sig := &domain.Signal{Metric: "revenue", PreviousValue: 100000, CurrentValue: 100000}

	text := explainer.Summarize("revenue", sig, nil)
	assert.Equal(t, "Revenue decreased by 0.0% (₹0). No single dimension dominates the change.", text)
}

func TestRecommendationsFor(t *testing.T) {
	explainer := NewExplainer("₹")

	tests := []struct {
		name     string
		drivers  []string
		expected int
	}{
		{"payroll matches case-insensitively", []string{"Payroll"}, 1},
		{"saas inside a longer name", []string{"SaaS Tools"}, 1},
		{"multiple keywords fire independently", []string{"Payroll", "Marketing"}, 2},
		{"no keyword no recommendation", []string{"Ops", "Travel"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, explainer.recommendationsFor(tt.drivers), tt.expected)
		})
	}
}

func TestMoneyFormat(t *testing.T) {
	money := NewMoney("₹")
	assert.Equal(t, "₹1,250,000", money.Format(1250000))
	assert.Equal(t, "-₹5,000", money.Format(-5000))
	assert.Equal(t, "₹0", money.Format(0))
}

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "25.0%", formatPct(0.25))
	assert.Equal(t, "-8.3%", formatPct(-0.083))
	assert.Equal(t, "inf%", formatPct(math.Inf(1)))
}
