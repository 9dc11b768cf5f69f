package insight

import (
	"math"
	"testing"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	detector := NewDetector(0)

	tests := []struct {
		name             string
		previous         float64
		current          float64
		expectSignal     bool
		expectedPct      float64
		expectedSeverity domain.Severity
	}{
		{
			name:             "25 percent jump is high severity",
			previous:         100000,
			current:          125000,
			expectSignal:     true,
			expectedPct:      0.25,
			expectedSeverity: domain.SeverityHigh,
		},
		{
			name:             "exactly at the 10 percent gate",
			previous:         100000,
			current:          110000,
			expectSignal:     true,
			expectedPct:      0.10,
			expectedSeverity: domain.SeverityMedium,
		},
		{
			name:         "5 percent move stays quiet",
			previous:     100000,
			current:      105000,
			expectSignal: false,
		},
		{
			name:             "drop below threshold is reported with sign",
			previous:         200000,
			current:          150000,
			expectSignal:     true,
			expectedPct:      -0.25,
			expectedSeverity: domain.SeverityHigh,
		},
		{
			name:             "zero baseline is always high",
			previous:         0,
			current:          50000,
			expectSignal:     true,
			expectedPct:      math.Inf(1),
			expectedSeverity: domain.SeverityHigh,
		},
		{
			name:         "zero to zero is no signal",
			previous:     0,
			current:      0,
			expectSignal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := detector.Detect("burn_rate", tt.previous, tt.current)
			if !tt.expectSignal {
				assert.Nil(t, sig)
				return
			}

			require.NotNil(t, sig)
			assert.Equal(t, "burn_rate", sig.Metric)
			assert.Equal(t, tt.previous, sig.PreviousValue)
			assert.Equal(t, tt.current, sig.CurrentValue)
			assert.Equal(t, tt.current-tt.previous, sig.AbsoluteChange)
			if math.IsInf(tt.expectedPct, 1) {
				assert.True(t, math.IsInf(sig.PercentChange, 1))
			} else {
				assert.InDelta(t, tt.expectedPct, sig.PercentChange, 1e-9)
			}
			assert.Equal(t, tt.expectedSeverity, sig.Severity)
			assert.False(t, sig.DetectedAt.IsZero())
		})
	}
}

func TestDetect_CustomThreshold(t *testing.T) {
	detector := NewDetector(0.05)

	sig := detector.Detect("revenue", 100000, 107000)
	require.NotNil(t, sig)
	assert.Equal(t, domain.SeverityLow, sig.Severity)

	assert.Nil(t, detector.Detect("revenue", 100000, 104000))
}
