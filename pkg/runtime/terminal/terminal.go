package terminal

import (
	"io"
	"os"

	"github.com/fin-tools/finsight/pkg/runtime/terminal/commands"
	"github.com/fin-tools/finsight/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	factory  commands.EngineFactory
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Factory commands.EngineFactory
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		factory:  opts.Factory,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finsight",
		Short: "Financial signal detection and reasoning over a company ledger",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.factory, cli.reporter))
	cmd.AddCommand(commands.NewAskCmd(cli.factory))
	cmd.AddCommand(commands.NewNudgesCmd(cli.factory))
	cmd.AddCommand(commands.NewSeedCmd(cli.factory))

	return cmd
}
