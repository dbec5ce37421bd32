package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/classdeck/classdeck/internal/theme"
)

// ErrInvalidTheme is returned for theme names other than light or dark.
var ErrInvalidTheme = errors.New("theme must be \"light\" or \"dark\"")

// validThemeName reports whether name is an accepted theme value.
func validThemeName(name string) bool {
	t := theme.Theme(name)
	return t == theme.Light || t == theme.Dark
}

// newThemeCmd creates the theme command group for the stored preference.
func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect or change the stored theme preference",
	}
	cmd.AddCommand(newThemeGetCmd(), newThemeSetCmd(), newThemeToggleCmd())
	return cmd
}

func newThemeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the theme that a board would start with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctl, err := newThemeController()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ctl.Current())
			return nil
		},
	}
}

func newThemeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <light|dark>",
		Short: "Store a theme preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validThemeName(args[0]) {
				return fmt.Errorf("%w: %q", ErrInvalidTheme, args[0])
			}

			store, err := openPreferenceStore()
			if err != nil {
				return err
			}
			if err := store.Set(theme.PreferenceKey, args[0]); err != nil {
				return err
			}
			logger.Info().Str("theme", args[0]).Msg("theme preference stored")
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
			return nil
		},
	}
}

func newThemeToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip the stored theme preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctl, err := newThemeController()
			if err != nil {
				return err
			}
			res := ctl.Toggle()
			fmt.Fprintln(cmd.OutOrStdout(), res.Announcement)
			return nil
		},
	}
}
