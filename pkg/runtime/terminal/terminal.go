package terminal

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emilgroup/policy-report/pkg/export"
	"github.com/emilgroup/policy-report/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	ctx     context.Context
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Generator commands.ReportGenerator
	Writer    *export.Writer
	Context   context.Context
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Writer == nil {
		opts.Writer = export.NewWriter("")
	}

	cli := &CLI{ctx: opts.Context}
	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.ExecuteContext(cli.ctx)
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy-report",
		Short: "Daily policy report generator",
	}

	cmd.AddCommand(commands.NewJSONCmd(opts.Generator, opts.Writer))

	return cmd
}
