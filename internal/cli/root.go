// Package cli implements the cobra command tree for cleanwater.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/cleanwater/internal/config"
	"github.com/hupe1980/cleanwater/internal/logging"
	"github.com/hupe1980/cleanwater/internal/scenario"
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it, and returns the exit code.
func Execute() int {
	cmd := NewRootCommand()

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		return 1
	}

	return 0
}

// NewRootCommand constructs the top-level cobra.Command with all
// subcommands attached. Running it without a subcommand runs the plant
// scenario.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "cleanwater",
		Short: "Run the clean-water plant filter scenario",
		Long: `cleanwater runs the clean-water plant operations scenario.

It builds one water filter, processes water through it, checks its
efficiency, and always ends the session with a shutdown message.
Without flags it runs the standard scenario: a fresh chemical filter
CHEM-101 that is processed once and reset before the efficiency check.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			logger := logging.Setup(cfg)

			ctx := cmd.Context()
			ctx = config.NewContext(ctx, cfg)
			ctx = logging.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug("configuration loaded",
				slog.String("logLevel", cfg.LogLevel),
				slog.String("logFormat", cfg.LogFormat),
				slog.String("configFile", cfg.ConfigFile),
			)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			rep := scenario.NewRunner(cmd.OutOrStdout(), scenario.OptionsFromConfig(cfg)).Run(ctx)

			logging.FromContext(ctx).Debug("scenario finished",
				slog.String("session", rep.Session),
				slog.String("outcome", rep.Outcome.String()),
			)

			return nil
		},
	}

	// Global persistent flags.
	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: .cleanwater.yaml)")
	pf.String("log-level", config.LogLevelInfo, "log level: debug, info, warn, error")
	pf.String("log-format", config.LogFormatText, "log format: text, json")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")

	registerScenarioFlags(pf)

	// Fails only when the flag is missing or already has a completion.
	if err := registerKindCompletion(cmd); err != nil {
		panic(err)
	}

	// Flag parsing errors return exit code 2.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	cmd.AddCommand(
		newVersionCommand(),
		newKindsCommand(),
		newConfigCommand(),
		newCompletionCommand(),
	)

	return cmd
}
