package commands

import (
	"fmt"
	"time"

	"github.com/fin-tools/finsight/pkg/store/duckdb/ledger"
	"github.com/spf13/cobra"
)

type SeedCmd struct {
	ledgerPath string
	currency   string
	factory    EngineFactory
}

func NewSeedCmd(factory EngineFactory) *cobra.Command {
	sc := &SeedCmd{factory: factory}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the ledger with six months of demo data",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.ledgerPath, "ledger", "", "Path to the ledger database")
	cmd.Flags().StringVar(&sc.currency, "currency", "₹", "Currency symbol used in narratives")

	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	engine, err := sc.factory(ctx, sc.ledgerPath, sc.currency)
	if err != nil {
		return fmt.Errorf("failed to open ledger %q: %w", sc.ledgerPath, err)
	}
	defer func() { _ = engine.Close() }()

	if err := ledger.Seed(ctx, engine.Ledger, time.Now()); err != nil {
		return fmt.Errorf("failed to seed ledger: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded demo ledger at %s\n", sc.ledgerPath)
	return nil
}
