// Package commands implements the CLI commands for stellium.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.stellium.dev/stellium/internal/app"
	"go.stellium.dev/stellium/internal/build"
)

// CLI represents the command line interface for stellium.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Chart(ctx context.Context, req app.ChartRequest) error
	ChartBatch(ctx context.Context, reqs []app.ChartRequest) error
	Return(ctx context.Context, req app.ReturnRequest) error
	Watch(ctx context.Context, req app.ChartRequest) error
	EnableStageTracing()
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stellium",
		Short:         "An astrological chart calculation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("trace", false, "Report pipeline stage timings through the logger")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if trace, _ := cmd.Flags().GetBool("trace"); trace {
			a.EnableStageTracing()
		}
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newChartCmd())
	rootCmd.AddCommand(c.newReturnCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
