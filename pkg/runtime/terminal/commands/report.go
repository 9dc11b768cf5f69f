package commands

import (
	"fmt"

	"github.com/fin-tools/finsight/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	ledgerPath string
	currency   string
	factory    EngineFactory
	reporter   *export.Reporter
}

func NewReportCmd(factory EngineFactory, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{factory: factory, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the KPI report for the latest two ledger periods",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.ledgerPath, "ledger", "", "Path to the ledger database")
	cmd.Flags().StringVar(&rc.currency, "currency", "₹", "Currency symbol used in narratives")

	_ = cmd.MarkFlagRequired("ledger")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	engine, err := rc.factory(ctx, rc.ledgerPath, rc.currency)
	if err != nil {
		return fmt.Errorf("failed to open ledger %q: %w", rc.ledgerPath, err)
	}
	defer func() { _ = engine.Close() }()

	result, err := engine.Reasoner.ReasonLatest(ctx)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	return rc.reporter.Handle(result)
}
