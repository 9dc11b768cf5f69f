package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const expensesSchema = `
	CREATE TABLE IF NOT EXISTS expenses (
		period VARCHAR NOT NULL,
		category VARCHAR NOT NULL,
		amount DOUBLE NOT NULL,
		PRIMARY KEY (period, category)
	);
`

const revenueSchema = `
	CREATE TABLE IF NOT EXISTS revenue (
		period VARCHAR NOT NULL,
		source VARCHAR NOT NULL,
		amount DOUBLE NOT NULL,
		PRIMARY KEY (period, source)
	);
`

const cashSchema = `
	CREATE TABLE IF NOT EXISTS cash (
		period VARCHAR NOT NULL PRIMARY KEY,
		cash_in DOUBLE NOT NULL,
		cash_out DOUBLE NOT NULL,
		balance DOUBLE NOT NULL
	);
`

const receivablesSchema = `
	CREATE TABLE IF NOT EXISTS receivables (
		id VARCHAR NOT NULL PRIMARY KEY,
		amount DOUBLE NOT NULL,
		days_past_due INTEGER NOT NULL,
		status VARCHAR NOT NULL
	);
`

const alertsSchema = `
	CREATE TABLE IF NOT EXISTS alerts (
		id VARCHAR NOT NULL,
		company_id VARCHAR NOT NULL,
		severity VARCHAR NOT NULL,
		message VARCHAR NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (company_id, id)
	);
`

var bootQueries = []string{
	expensesSchema,
	revenueSchema,
	cashSchema,
	receivablesSchema,
	alertsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}

type txKey struct{}

// WithTransaction lets multi-store operations share one transaction.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}
