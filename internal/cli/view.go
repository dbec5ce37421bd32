package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/classdeck/classdeck/internal/config"
	"github.com/classdeck/classdeck/internal/deck"
	"github.com/classdeck/classdeck/internal/paginate"
	"github.com/classdeck/classdeck/internal/theme"
	"github.com/classdeck/classdeck/internal/tui"
)

// ErrNotATerminal is returned when the board is started without a TTY.
var ErrNotATerminal = errors.New("view requires an interactive terminal (use --check to validate decks)")

// newViewCmd creates the view command: load decks and run the board.
func newViewCmd() *cobra.Command {
	var (
		themeFlag string
		check     bool
	)

	cmd := &cobra.Command{
		Use:   "view <deck.yaml> [deck.yaml...]",
		Short: "Open decks on the interactive board",
		Args:  cobra.MinimumNArgs(1),
		Example: `  # Open a single deck
  classdeck view algebra.yaml

  # Open several decks as one board, forcing the light theme for this run
  classdeck view --theme light algebra.yaml geometry.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if themeFlag != "" && !validThemeName(themeFlag) {
				return fmt.Errorf("%w: %q", ErrInvalidTheme, themeFlag)
			}

			decks, err := deck.LoadAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			sections := deck.CombineSections(decks)
			if len(sections) == 0 {
				return fmt.Errorf("no sections found in %d deck(s)", len(decks))
			}

			if check {
				return printDeckSummary(cmd, decks)
			}

			if !tui.IsTTY() {
				return ErrNotATerminal
			}

			ctl, err := newThemeController()
			if err != nil {
				return err
			}
			if themeFlag != "" {
				ctl.SetCurrent(theme.Theme(themeFlag))
			}

			boardLogger := interactiveLogger(logger, cfg)
			board := tui.NewBoardModel(decks[0].Title, sections, ctl, boardLogger)

			logger.Info().Int("decks", len(decks)).Int("sections", len(sections)).Msg("opening board")
			_, err = tea.NewProgram(board, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&themeFlag, "theme", "", "theme for this run only: light or dark (not persisted)")
	cmd.Flags().BoolVar(&check, "check", false, "validate decks and print a summary instead of opening the board")

	return cmd
}

// printDeckSummary writes one line per section with its item count and
// effective paging.
func printDeckSummary(cmd *cobra.Command, decks []*deck.Deck) error {
	for _, d := range decks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (format %s)\n", d.Title, d.Format)
		for _, s := range d.Sections {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-30s %3d items, page size %d\n",
				s.DisplayTitle(), len(s.Items), effectivePageSize(s))
		}
	}
	return nil
}

// effectivePageSize applies the permissive page-size parse a section's
// attribute will get at render time.
func effectivePageSize(s deck.Section) int {
	return paginate.ParsePageSize(s.PageSize)
}

// openPreferenceStore opens the durable preference store in the user
// config dir.
func openPreferenceStore() (*theme.FileStore, error) {
	prefsPath, err := config.PreferencesPath()
	if err != nil {
		return nil, err
	}
	return theme.OpenFileStore(prefsPath)
}

// newThemeController opens the preference store and resolves the theme.
func newThemeController() (*theme.Controller, error) {
	store, err := openPreferenceStore()
	if err != nil {
		return nil, err
	}
	return theme.NewController(store, theme.OSLightBackground, logger), nil
}
