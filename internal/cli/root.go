// Package cli implements the ruddr command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomblancdev/ruddr-go"
	"github.com/tomblancdev/ruddr-go/internal/config"
)

// BuildInfo describes the binary, set by the linker in cmd/ruddr.
type BuildInfo struct {
	Version   string
	BuildTime string
}

// app carries state shared by every command of one invocation.
type app struct {
	build BuildInfo

	cfgFile string
	token   string
	baseURL string
	output  string
	timeout time.Duration

	cfg    *config.Config
	logger zerolog.Logger
}

// Execute runs the root command and exits non-zero on failure.
func Execute(build BuildInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd(build).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	a := &app{build: build, logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "ruddr",
		Short: "Read-only command line client for the Ruddr workspace API",
		Long: `ruddr reads members, projects, clients, time entries, allocations and
other workspace records from the Ruddr API and prints them as JSON or YAML.

The API token is taken from --token, then the RUDDR_TOKEN environment
variable, then the token key of the config file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initialize,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./ruddr.yaml or $HOME/.ruddr/ruddr.yaml)")
	flags.StringVar(&a.token, "token", "", "Ruddr API token")
	flags.StringVar(&a.baseURL, "base-url", "", "API base URL")
	flags.StringVarP(&a.output, "output", "o", "", "output format: json or yaml")
	flags.DurationVar(&a.timeout, "timeout", 0, "per-request timeout")

	rootCmd.AddCommand(
		newGetCmd(a),
		newListCmd(a),
		newRawCmd(a),
		newSummaryCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

// initialize loads configuration and sets up the logger. Flags given on
// the command line override the config file and environment.
func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = a.baseURL
	}
	if flags.Changed("output") {
		if a.output != "json" && a.output != "yaml" {
			return fmt.Errorf("invalid output: %s", a.output)
		}
		cfg.Output = a.output
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}

	a.cfg = cfg
	a.logger = setupLogger(cfg.Logging, cmd.ErrOrStderr())
	return nil
}

// newClient builds an API client from the loaded configuration.
func (a *app) newClient(cmd *cobra.Command) (*ruddr.Client, error) {
	opts := []ruddr.Option{
		ruddr.WithBaseURL(a.cfg.BaseURL),
		ruddr.WithTimeout(a.cfg.Timeout),
		ruddr.WithLogger(a.logger),
		ruddr.WithUserAgent("ruddr-cli/" + a.build.Version + " " + ruddr.DefaultUserAgent()),
		ruddr.WithTokenLookup(a.cfg.TokenLookup()),
	}
	if cmd.Flags().Changed("token") {
		opts = append(opts, ruddr.WithToken(a.token))
	}

	client, err := ruddr.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ruddr client: %w", err)
	}
	return client, nil
}

func (a *app) print(w io.Writer, v any) error {
	return writeOutput(w, a.cfg.Output, v)
}
