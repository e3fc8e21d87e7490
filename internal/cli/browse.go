package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/router"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/tui"
)

// ErrNotInteractive is returned by browse when stdout is not a terminal.
var ErrNotInteractive = errors.New("browse needs an interactive terminal; use list or show instead")

func newBrowseCmd(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [path]",
		Short: "Open the interactive Pokédex",
		Long: `Opens the full-screen Pokédex browser at path (default "/").

Paths: / (home), /pokedex (catalog), /pokedex/<id> (detail), /info.
The catalog and detail pages require a signed-in user.`,
		Example: `  pokedex browse
  pokedex browse /pokedex/25 --user ash`,
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			annotationOwnsTerminal: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, st, args)
		},
	}
}

func runBrowse(cmd *cobra.Command, st *appState, args []string) error {
	start := router.PathHome
	if len(args) == 1 {
		start = args[0]
	}
	if tui.DetectOutputMode(false, isPlain(cmd)) != tui.OutputModeInteractive {
		return ErrNotInteractive
	}

	ctx := cmd.Context()
	app := tui.NewApp(st.appOptions(ctx), start)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error().Ctx(ctx).Err(err).Msg("browser exited with error")
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

func (s *appState) appOptions(ctx context.Context) tui.Options {
	return tui.Options{
		Context:   ctx,
		Dataset:   s.dataset,
		Session:   s.session,
		API:       s.api,
		Images:    s.images,
		InfoStyle: tui.GlamourStyleAuto,
		Version:   s.version,
	}.WithConfig(s.cfg)
}
