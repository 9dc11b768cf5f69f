package alert

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/store"
	alertstore "github.com/fin-tools/finsight/pkg/store/alert"
)

type duckStore struct {
	db *sql.DB
}

// NewStore returns the durable, DuckDB-backed alert store.
func NewStore(db *sql.DB) (alertstore.Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &duckStore{db: db}, nil
}

func (d *duckStore) Replace(ctx context.Context, companyID string, records []store.AlertRecord) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM alerts WHERE company_id = ?`, companyID); err != nil {
		return fmt.Errorf("clear alerts: %w", err)
	}

	for _, r := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO alerts (id, company_id, severity, message, created_at) VALUES (?, ?, ?, ?, ?)`,
			r.ID, r.CompanyID, r.Severity, r.Message, r.CreatedAt); err != nil {
			return fmt.Errorf("insert alert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (d *duckStore) Active(ctx context.Context, companyID string) ([]store.AlertRecord, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, company_id, severity, message, created_at
		 FROM alerts WHERE company_id = ? ORDER BY created_at DESC, id`, companyID)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var records []store.AlertRecord
	for rows.Next() {
		var r store.AlertRecord
		if err := rows.Scan(&r.ID, &r.CompanyID, &r.Severity, &r.Message, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
