package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/classdeck/classdeck/internal/config"
)

// ErrConfigExists is returned by config init when a file is already present.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage classdeck configuration",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigResetCmd())
	return cmd
}

// newConfigInitCmd writes a default config file to the user config dir.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}

			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return ErrConfigExists
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg("configuration initialized")
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// newConfigResetCmd removes the config file and the stored preferences
// after a y/N confirmation.
func newConfigResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the configuration file and stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				res := Confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
					"Delete the classdeck configuration and preferences?")
				if !res.Accepted {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			cfgPath, err := config.Path()
			if err != nil {
				return err
			}
			prefsPath, err := config.PreferencesPath()
			if err != nil {
				return err
			}

			for _, path := range []string{cfgPath, prefsPath} {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("removing %s: %w", path, err)
				}
			}
			logger.Info().Msg("configuration reset")
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
