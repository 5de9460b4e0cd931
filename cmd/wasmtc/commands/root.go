// Package commands implements the CLI commands for wasmtc.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wasmtc/internal/app"
	"go.trai.ch/wasmtc/internal/build"
)

// CLI represents the command line interface for wasmtc.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Plan(ctx context.Context, jobPath string, opts app.PlanOptions) (*app.Report, error)
	Flags(ctx context.Context, jobPath string, opts app.FlagsOptions) ([]string, error)
	Clean(ctx context.Context) error
}

// LogSettings is the part of the logger controlled by global flags.
type LogSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogSettings lets --verbose and --json-logs reconfigure the logger.
func WithLogSettings(l LogSettings) Option {
	return func(c *CLI) { c.logs = l }
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wasmtc",
		Short:         "Plan WebAssembly compile and link actions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v belongs to --verbose; the version flag is registered after it and keeps no shorthand.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.logs.SetVerbose(verbose)
		c.logs.SetJSON(jsonLogs)
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newFlagsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

func jobPath(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
