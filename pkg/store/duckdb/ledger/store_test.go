package ledger

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/store/duckdb"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	store, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: store}
}

func sampleLedger() ([]store.ExpenseRecord, []store.RevenueRecord, []store.CashRecord, []store.ReceivableRecord) {
	expenses := []store.ExpenseRecord{
		{Period: "2025-05", Category: "Payroll", Amount: 400000},
		{Period: "2025-05", Category: "SaaS", Amount: 30000},
		{Period: "2025-06", Category: "Payroll", Amount: 440000},
		{Period: "2025-06", Category: "SaaS", Amount: 35000},
	}
	revenue := []store.RevenueRecord{
		{Period: "2025-05", Source: "Product", Amount: 280000},
		{Period: "2025-06", Source: "Product", Amount: 300000},
		{Period: "2025-06", Source: "Services", Amount: 25000},
	}
	cash := []store.CashRecord{
		{Period: "2025-05", CashIn: 280000, CashOut: 430000, Balance: 850000},
		{Period: "2025-06", CashIn: 325000, CashOut: 475000, Balance: 700000},
	}
	receivables := []store.ReceivableRecord{
		{ID: "INV-102", Amount: 80000, DaysPastDue: 40, Status: "unpaid"},
		{ID: "INV-101", Amount: 150000, DaysPastDue: 12, Status: "unpaid"},
		{ID: "INV-104", Amount: 30000, DaysPastDue: 60, Status: "paid"},
	}
	return expenses, revenue, cash, receivables
}

func TestLedgerStore_RoundTrip(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	expenses, revenue, cash, receivables := sampleLedger()
	require.NoError(t, f.store.ReplaceAll(ctx, expenses, revenue, cash, receivables))

	t.Run("periods come from the cash series in order", func(t *testing.T) {
		periods, err := f.store.Periods(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-05", "2025-06"}, periods)
	})

	t.Run("expenses filtered by period, ordered by category", func(t *testing.T) {
		records, err := f.store.Expenses(ctx, "2025-06")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Payroll", records[0].Category)
		assert.Equal(t, 440000.0, records[0].Amount)
		assert.Equal(t, "SaaS", records[1].Category)
	})

	t.Run("revenue filtered by period, ordered by source", func(t *testing.T) {
		records, err := f.store.Revenue(ctx, "2025-06")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Product", records[0].Source)
		assert.Equal(t, "Services", records[1].Source)
	})

	t.Run("cash series in period order", func(t *testing.T) {
		records, err := f.store.Cash(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 700000.0, records[1].Balance)
	})

	t.Run("only unpaid receivables, ordered by id", func(t *testing.T) {
		records, err := f.store.UnpaidReceivables(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "INV-101", records[0].ID)
		assert.Equal(t, "INV-102", records[1].ID)
	})

	t.Run("unknown period yields no rows", func(t *testing.T) {
		records, err := f.store.Expenses(ctx, "2024-01")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestLedgerStore_ReplaceAllSwapsContents(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	expenses, revenue, cash, receivables := sampleLedger()
	require.NoError(t, f.store.ReplaceAll(ctx, expenses, revenue, cash, receivables))

	replacement := []store.ExpenseRecord{{Period: "2025-07", Category: "Ops", Amount: 12000}}
	require.NoError(t, f.store.ReplaceAll(ctx, replacement, nil, nil, nil))

	records, err := f.store.Expenses(ctx, "2025-07")
	require.NoError(t, err)
	require.Len(t, records, 1)

	old, err := f.store.Expenses(ctx, "2025-06")
	require.NoError(t, err)
	assert.Empty(t, old)

	periods, err := f.store.Periods(ctx)
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, Seed(ctx, f.store, now))

	periods, err := f.store.Periods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03", "2025-04", "2025-05", "2025-06"}, periods)

	expenses, err := f.store.Expenses(ctx, "2025-06")
	require.NoError(t, err)
	require.Len(t, expenses, 5)
	categories := make(map[string]bool)
	for _, e := range expenses {
		categories[e.Category] = true
		assert.Greater(t, e.Amount, 0.0)
	}
	assert.True(t, categories["Payroll"])
	assert.True(t, categories["SaaS"])

	revenue, err := f.store.Revenue(ctx, "2025-06")
	require.NoError(t, err)
	require.Len(t, revenue, 2)

	receivables, err := f.store.UnpaidReceivables(ctx)
	require.NoError(t, err)
	assert.Len(t, receivables, 3)

	// Seeding is deterministic: a second run produces the same ledger.
	first, err := f.store.Cash(ctx)
	require.NoError(t, err)
	require.NoError(t, Seed(ctx, f.store, now))
	second, err := f.store.Cash(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
