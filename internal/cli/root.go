package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/classdeck/classdeck/internal/config"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// cfg is the configuration loaded by the root command's PersistentPreRunE.
var cfg *config.Config //nolint:gochecknoglobals // Set once per invocation, read by subcommands

// NewRootCmd creates the root Cobra command for the classdeck CLI.
// It wires up configuration loading, logging, and the view, theme, and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		cfgPath    string
		logCleanup func()
	)

	cmd := &cobra.Command{
		Use:     "classdeck",
		Short:   "Terminal viewer for paginated class decks",
		Long:    "classdeck: browse decks of class content with pagination, transient notices, and a persisted light/dark theme",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path := cfgPath
			if path == "" {
				var err error
				if path, err = config.Path(); err != nil {
					return err
				}
			}

			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded

			logger, logCleanup = setupLogging(cmd, cfg)
			logger.Debug().Str("command", cmd.Name()).Str("config", path).Msg("command started")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logCleanup != nil {
				logCleanup()
			}
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: user config dir)")

	cmd.AddCommand(newViewCmd(), newThemeCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse one or more decks
  classdeck view algebra.yaml geometry.yaml

  # Validate decks without opening the board
  classdeck view --check algebra.yaml

  # Inspect or flip the stored theme preference
  classdeck theme get
  classdeck theme toggle

  # Initialize configuration
  classdeck config init`
