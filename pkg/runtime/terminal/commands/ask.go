package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type AskCmd struct {
	ledgerPath string
	currency   string
	factory    EngineFactory
}

func NewAskCmd(factory EngineFactory) *cobra.Command {
	ac := &AskCmd{factory: factory}
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a free-form finance question against the ledger",
		Args:  cobra.MinimumNArgs(1),
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.ledgerPath, "ledger", "", "Path to the ledger database")
	cmd.Flags().StringVar(&ac.currency, "currency", "₹", "Currency symbol used in narratives")

	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}

func (ac *AskCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")

	engine, err := ac.factory(ctx, ac.ledgerPath, ac.currency)
	if err != nil {
		return fmt.Errorf("failed to open ledger %q: %w", ac.ledgerPath, err)
	}
	defer func() { _ = engine.Close() }()

	reply, err := engine.Router.Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to answer query: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", reply.Intent, reply.Answer)
	return nil
}
