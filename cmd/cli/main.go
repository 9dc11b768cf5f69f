package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fin-tools/finsight/pkg/models/domain"
	"github.com/fin-tools/finsight/pkg/runtime/terminal"
	"github.com/fin-tools/finsight/pkg/runtime/terminal/commands"
	"github.com/fin-tools/finsight/pkg/services/alerts"
	"github.com/fin-tools/finsight/pkg/services/chat"
	"github.com/fin-tools/finsight/pkg/services/insight"
	"github.com/fin-tools/finsight/pkg/services/nudge"
	"github.com/fin-tools/finsight/pkg/services/snapshot"
	"github.com/fin-tools/finsight/pkg/services/whatif"
	alertstore "github.com/fin-tools/finsight/pkg/store/alert"
	"github.com/fin-tools/finsight/pkg/store/duckdb"
	"github.com/fin-tools/finsight/pkg/store/duckdb/ledger"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Factory: newEngine,
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newEngine(_ context.Context, ledgerPath, currency string) (*commands.Engine, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ledgerPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB instance: %w", err)
	}

	ledgerStore, err := ledger.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create ledger store: %w", err)
	}

	company := domain.CompanyProfile{
		ID:         "local",
		Name:       "Local Ledger",
		Currency:   currency,
		LedgerPath: ledgerPath,
	}

	accessor := snapshot.NewLedgerAccessor(ledgerStore)
	reasoner := insight.NewReasoner(accessor, insight.Config{CurrencySymbol: currency})
	simulator := whatif.NewSimulator(accessor)
	router := chat.NewRouter(reasoner, simulator, currency)
	generator := nudge.NewGenerator(currency)

	// CLI runs are one-shot; alerts never need to outlive the process.
	controller := alerts.NewController(company, reasoner, accessor, generator, alertstore.NewMemoryStore())

	return &commands.Engine{
		Company:  company,
		Reasoner: reasoner,
		Router:   router,
		Alerts:   controller,
		Ledger:   ledgerStore,
		Close:    db.Close,
	}, nil
}
