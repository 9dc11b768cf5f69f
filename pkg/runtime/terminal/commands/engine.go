package commands

import (
	"context"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/services/alerts"
	"github.com/fin-tools/finsight/pkg/services/chat"
	"github.com/fin-tools/finsight/pkg/store/duckdb/ledger"
)

// Engine bundles the services a command needs once the ledger is opened.
type Engine struct {
	Company  domain.CompanyProfile
	Reasoner alerts.Reasoner
	Router   *chat.Router
	Alerts   *alerts.Controller
	Ledger   ledger.Store
	Close    func() error
}

// EngineFactory opens the ledger at path and wires the engine services.
// main owns the concrete wiring so commands stay storage-agnostic.
type EngineFactory func(ctx context.Context, ledgerPath, currency string) (*Engine, error)
