package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/store/duckdb"
)

// Store reads and writes the period-keyed financial ledger. Reads return
// rows in a deterministic order (period ascending, dimension key
// ascending) so downstream attribution is reproducible.
type Store interface {
	Periods(ctx context.Context) ([]string, error)
	Expenses(ctx context.Context, period string) ([]store.ExpenseRecord, error)
	Revenue(ctx context.Context, period string) ([]store.RevenueRecord, error)
	Cash(ctx context.Context) ([]store.CashRecord, error)
	UnpaidReceivables(ctx context.Context) ([]store.ReceivableRecord, error)

	ReplaceAll(
		ctx context.Context,
		expenses []store.ExpenseRecord,
		revenue []store.RevenueRecord,
		cash []store.CashRecord,
		receivables []store.ReceivableRecord,
	) error
}

type ledgerStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &ledgerStore{db: db}, nil
}

func (l *ledgerStore) Periods(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT period FROM cash ORDER BY period`)
	if err != nil {
		return nil, fmt.Errorf("query periods: %w", err)
	}
	defer rows.Close()

	var periods []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

func (l *ledgerStore) Expenses(ctx context.Context, period string) ([]store.ExpenseRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT period, category, amount FROM expenses WHERE period = ? ORDER BY category`, period)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var records []store.ExpenseRecord
	for rows.Next() {
		var r store.ExpenseRecord
		if err := rows.Scan(&r.Period, &r.Category, &r.Amount); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (l *ledgerStore) Revenue(ctx context.Context, period string) ([]store.RevenueRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT period, source, amount FROM revenue WHERE period = ? ORDER BY source`, period)
	if err != nil {
		return nil, fmt.Errorf("query revenue: %w", err)
	}
	defer rows.Close()

	var records []store.RevenueRecord
	for rows.Next() {
		var r store.RevenueRecord
		if err := rows.Scan(&r.Period, &r.Source, &r.Amount); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (l *ledgerStore) Cash(ctx context.Context) ([]store.CashRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT period, cash_in, cash_out, balance FROM cash ORDER BY period`)
	if err != nil {
		return nil, fmt.Errorf("query cash: %w", err)
	}
	defer rows.Close()

	var records []store.CashRecord
	for rows.Next() {
		var r store.CashRecord
		if err := rows.Scan(&r.Period, &r.CashIn, &r.CashOut, &r.Balance); err != nil {
			return nil, fmt.Errorf("scan cash: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (l *ledgerStore) UnpaidReceivables(ctx context.Context) ([]store.ReceivableRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, amount, days_past_due, status FROM receivables WHERE status = 'unpaid' ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query receivables: %w", err)
	}
	defer rows.Close()

	var records []store.ReceivableRecord
	for rows.Next() {
		var r store.ReceivableRecord
		if err := rows.Scan(&r.ID, &r.Amount, &r.DaysPastDue, &r.Status); err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ReplaceAll swaps the full ledger contents inside one transaction. Used by
// seeding and data refresh; readers always see a consistent snapshot.
func (l *ledgerStore) ReplaceAll(
	ctx context.Context,
	expenses []store.ExpenseRecord,
	revenue []store.RevenueRecord,
	cash []store.CashRecord,
	receivables []store.ReceivableRecord,
) error {
	tx := duckdb.GetTransaction(ctx)
	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = l.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback()
	}

	for _, table := range []string{"expenses", "revenue", "cash", "receivables"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, r := range expenses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (period, category, amount) VALUES (?, ?, ?)`,
			r.Period, r.Category, r.Amount); err != nil {
			return fmt.Errorf("insert expense: %w", err)
		}
	}
	for _, r := range revenue {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO revenue (period, source, amount) VALUES (?, ?, ?)`,
			r.Period, r.Source, r.Amount); err != nil {
			return fmt.Errorf("insert revenue: %w", err)
		}
	}
	for _, r := range cash {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cash (period, cash_in, cash_out, balance) VALUES (?, ?, ?, ?)`,
			r.Period, r.CashIn, r.CashOut, r.Balance); err != nil {
			return fmt.Errorf("insert cash: %w", err)
		}
	}
	for _, r := range receivables {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO receivables (id, amount, days_past_due, status) VALUES (?, ?, ?, ?)`,
			r.ID, r.Amount, r.DaysPastDue, r.Status); err != nil {
			return fmt.Errorf("insert receivable: %w", err)
		}
	}

	if ownTx {
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
	}
	return nil
}
