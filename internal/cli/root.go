package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"yubin/internal/config"
	"yubin/internal/dataset"
	"yubin/internal/eventbus"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string // empty means config.DefaultPath()
	DataSource string // overrides dataset.source
	Verbose    bool
}

// NewRootCommand creates the root command. Without a subcommand it runs the TUI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "yubin",
		Short: "Postal address lookup",
		Long: `Look up Japanese postal addresses by zip code, address or furigana.

Without a subcommand yubin opens the interactive search screen.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVarP(&opts.DataSource, "data", "d", "", "dataset path, http(s):// URL or s3://bucket/key")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts *RootOptions, bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	var svc config.ConfigService
	if bus != nil {
		svc = config.NewConfigServiceWithBus(opts.ConfigPath, bus)
	} else {
		svc = config.NewConfigService(opts.ConfigPath)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "cannot load config", err)
	}
	if opts.DataSource != "" {
		cfg.Dataset.Source = opts.DataSource
	}
	return cfg, svc, nil
}

// newLoader builds a dataset loader from the dataset settings
func newLoader(cfg *config.Config, bus eventbus.EventBus) (*dataset.Loader, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid config", err)
	}
	return dataset.NewLoader(bus, dataset.Options{
		Timeout: timeout,
		S3: dataset.S3Opener{
			Endpoint:  cfg.Dataset.S3.Endpoint,
			AccessKey: cfg.Dataset.S3.AccessKey,
			SecretKey: cfg.Dataset.S3.SecretKey,
			Secure:    cfg.Dataset.S3.Secure,
		},
	}), nil
}

// setupLogging points the standard logger at the configured log file.
// Verbose mode also copies log lines to stderr when it is not a TUI session.
func setupLogging(cfg *config.Config, verbose, tui bool, stderr io.Writer) func() {
	var out io.Writer = io.Discard
	closeFn := func() {}

	if cfg.UI.LogFile != "" {
		logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			out = logFile
			closeFn = func() { _ = logFile.Close() }
		}
	}
	if verbose && !tui {
		out = io.MultiWriter(out, stderr)
	}

	log.SetOutput(out)
	return closeFn
}
