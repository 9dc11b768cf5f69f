package alert

import (
	"context"

	"github.com/fin-tools/finsight/pkg/models/store"
)

// Store keeps the active alert set per company. An evaluation replaces the
// previous set wholesale, so re-running is idempotent. Two implementations
// exist: DuckDB-backed (durable) and in-memory; the caller picks one at
// construction time.
type Store interface {
	Replace(ctx context.Context, companyID string, records []store.AlertRecord) error
	Active(ctx context.Context, companyID string) ([]store.AlertRecord, error)
}
