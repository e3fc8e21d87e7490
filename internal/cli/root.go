package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationOwnsTerminal marks commands that draw full-screen, so logs must
// never reach stderr.
const annotationOwnsTerminal = "owns-terminal"

// NewRootCmd creates the root Cobra command for the pokedex CLI.
// Running it without a subcommand opens the interactive browser.
func NewRootCmd(ver string) *cobra.Command {
	st := &appState{version: ver}
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "pokedex [path]",
		Short:   "Browse the first-generation Pokédex",
		Long:    "Pokédex: browse, search and inspect the 151 first-generation Pokémon from the terminal",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			annotationOwnsTerminal: "true",
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result, err := st.load(cmd)
			logResult = result
			return err
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return logResult.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, st, args)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.pokedex/config.yaml)")
	cmd.PersistentFlags().String("user", "", "sign in as this user")
	cmd.PersistentFlags().Bool("plain", false, "disable styling and interactive output")

	cmd.AddCommand(
		newBrowseCmd(st), newListCmd(st), newShowCmd(st),
		newExportCmd(st), newInfoCmd(st), newConfigCmd(),
	)
	return cmd
}

const rootCmdExample = `  # Open the browser on the home page
  pokedex

  # Open the browser signed in, directly on Pikachu
  pokedex browse /pokedex/25 --user ash

  # List fire types as JSON, sorted by name
  pokedex list --user ash --search fire --sort name --output json

  # Show a Pokémon with its artwork
  pokedex show 6 --user ash --art

  # Export the catalog to a spreadsheet
  pokedex export --user ash --out pokedex.xlsx

  # Create the default configuration
  pokedex config init`
