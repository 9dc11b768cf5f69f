package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type NudgesCmd struct {
	ledgerPath string
	currency   string
	factory    EngineFactory
}

func NewNudgesCmd(factory EngineFactory) *cobra.Command {
	nc := &NudgesCmd{factory: factory}
	cmd := &cobra.Command{
		Use:   "nudges",
		Short: "List threshold nudges for the current ledger state",
		RunE:  nc.run,
	}

	cmd.Flags().StringVar(&nc.ledgerPath, "ledger", "", "Path to the ledger database")
	cmd.Flags().StringVar(&nc.currency, "currency", "₹", "Currency symbol used in narratives")

	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}

func (nc *NudgesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	engine, err := nc.factory(ctx, nc.ledgerPath, nc.currency)
	if err != nil {
		return fmt.Errorf("failed to open ledger %q: %w", nc.ledgerPath, err)
	}
	defer func() { _ = engine.Close() }()

	nudges, err := engine.Alerts.Nudges(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute nudges: %w", err)
	}

	if len(nudges) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No nudges. All tracked thresholds are healthy.")
		return nil
	}

	for _, n := range nudges {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", n.Severity, n.Message)
	}
	return nil
}
