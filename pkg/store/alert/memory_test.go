package alert

import (
	"context"
	"testing"
	"time"

	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	createdAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	records := []store.AlertRecord{
		{ID: "a1", CompanyID: "acme", Severity: "high", Message: "Runway under 3 months (2.50). Immediate action required.", CreatedAt: createdAt},
		{ID: "a2", CompanyID: "acme", Severity: "medium", Message: "1 invoice(s) over 30 days past due totaling ₹80,000.", CreatedAt: createdAt},
	}

	t.Run("empty store yields no alerts", func(t *testing.T) {
		active, err := s.Active(ctx, "acme")
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("replace then read back", func(t *testing.T) {
		require.NoError(t, s.Replace(ctx, "acme", records))

		active, err := s.Active(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, records, active)
	})

	t.Run("companies are isolated", func(t *testing.T) {
		active, err := s.Active(ctx, "other")
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("replace swaps the whole set", func(t *testing.T) {
		replacement := []store.AlertRecord{
			{ID: "a3", CompanyID: "acme", Severity: "medium", Message: "Runway under 6 months (4.20). Consider cost controls.", CreatedAt: createdAt},
		}
		require.NoError(t, s.Replace(ctx, "acme", replacement))

		active, err := s.Active(ctx, "acme")
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "a3", active[0].ID)
	})

	t.Run("replace with nil clears", func(t *testing.T) {
		require.NoError(t, s.Replace(ctx, "acme", nil))

		active, err := s.Active(ctx, "acme")
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		require.NoError(t, s.Replace(ctx, "acme", records))

		active, err := s.Active(ctx, "acme")
		require.NoError(t, err)
		active[0].Message = "mutated"

		again, err := s.Active(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, records[0].Message, again[0].Message)
	})
}
