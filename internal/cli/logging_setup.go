package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/classdeck/classdeck/internal/config"
	"github.com/classdeck/classdeck/internal/logging"
)

// setupLogging configures logging from the config file and CLI flags.
// The returned cleanup closes any log file and must run after the command.
func setupLogging(cmd *cobra.Command, cfg *config.Config) (zerolog.Logger, func()) {
	loggingCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
	}

	base, cleanup := logging.New(loggingCfg)
	return logging.ComponentLogger(base, "cli"), cleanup
}

// interactiveLogger silences terminal logging for a TUI run unless output
// goes to a file; the board owns the screen.
func interactiveLogger(base zerolog.Logger, cfg *config.Config) zerolog.Logger {
	if cfg.Logging.File == "" {
		return base.Level(zerolog.Disabled)
	}
	return base
}
