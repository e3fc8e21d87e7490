package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/cobra"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/tui"
)

func newInfoCmd(st *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "About this Pokédex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			style := tui.GlamourStyleAuto
			if tui.DetectOutputMode(false, isPlain(cmd)) == tui.OutputModePlain {
				style = styles.NoTTYStyle
			}
			md := tui.InfoMarkdown(st.version)
			_, err := fmt.Fprint(cmd.OutOrStdout(), tui.RenderMarkdown(md, style, tui.TerminalWidth()))
			return err
		},
	}
}
