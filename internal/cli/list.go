package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/cli/pagination"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/format"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/tui"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

const noMatches = "No Pokémon match your search."

type listFlags struct {
	mode   string
	search string
	output string
	sort   string
	page   pagination.Params
}

// listItem is the JSON form of a catalog record.
type listItem struct {
	ID     int      `json:"id"`
	Number string   `json:"number"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
}

type listOutput struct {
	Items      []listItem      `json:"items"`
	Pagination pagination.Meta `json:"pagination"`
}

func newListCmd(st *appState) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		Long: `Lists the catalog as a grid of cards or a table.

--search matches names (accents and case ignored), a number such as 25 or
#025, or a type such as fire.`,
		Example: `  pokedex list --user ash
  pokedex list --user ash --mode table --search poison
  pokedex list --user ash --page 2 --page-size 20 --sort name:desc --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, st, flags)
		},
	}

	cmd.Flags().StringVar(&flags.mode, "mode", "", "display mode: grid or table (default from config)")
	cmd.Flags().StringVar(&flags.search, "search", "", "filter by name, number or type")
	cmd.Flags().StringVar(&flags.output, "output", OutputText, "output format: text or json")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort by id, name or type, optionally with :asc or :desc")
	cmd.Flags().IntVar(&flags.page.Limit, "limit", 0, "maximum number of results (0 = all)")
	cmd.Flags().IntVar(&flags.page.Offset, "offset", 0, "number of results to skip")
	cmd.Flags().IntVar(&flags.page.Page, "page", 0, "page number, starting at 1")
	cmd.Flags().IntVar(&flags.page.PageSize, "page-size", 0, "results per page (requires --page)")
	return cmd
}

func runList(cmd *cobra.Command, st *appState, flags listFlags) error {
	if err := st.requireSession(); err != nil {
		return err
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}
	mode := flags.mode
	if mode == "" {
		mode = st.cfg.Catalog.DefaultMode
	}
	if mode != config.ModeGrid && mode != config.ModeTable {
		return fmt.Errorf("%w %q: use grid or table", config.ErrInvalidMode, mode)
	}
	if err := flags.page.Validate(); err != nil {
		return fmt.Errorf("invalid pagination: %w", err)
	}
	field, order, err := pagination.ParseSort(flags.sort)
	if err != nil {
		return err
	}
	sorter := pagination.NewRecordSorter()
	if err = sorter.Validate(field); err != nil {
		return err
	}

	ctx := cmd.Context()
	matches := sorter.Sort(st.dataset.Search(flags.search), field, order)
	meta := pagination.NewMeta(flags.page, len(matches))
	records := pagination.Apply(flags.page, matches)
	logger.Debug().Ctx(ctx).
		Str("search", flags.search).
		Str("sort", field+":"+order).
		Int("matches", len(matches)).
		Int("shown", len(records)).
		Msg("catalog listed")

	out := cmd.OutOrStdout()
	if flags.output == OutputJSON {
		return writeListJSON(out, records, meta)
	}
	if len(records) == 0 {
		_, err = fmt.Fprintln(out, noMatches)
		return err
	}
	if tui.DetectOutputMode(false, isPlain(cmd)) == tui.OutputModePlain {
		return writeListPlain(out, records)
	}

	width := tui.TerminalWidth()
	var body string
	if mode == config.ModeTable {
		body = renderListTable(records)
	} else {
		body = tui.RenderCardGrid(records, tui.GridColumnsFrom(st.cfg.Catalog.Columns).For(width), width)
	}
	_, err = fmt.Fprintf(out, "%s\n%s\n", body,
		tui.SubtleStyle.Render(fmt.Sprintf("%d of %d Pokémon · page %d/%d",
			len(records), meta.TotalItems, meta.CurrentPage, meta.TotalPages)))
	return err
}

func validateOutput(output string) error {
	switch output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

func typeNames(r pokedex.Record) []string {
	out := make([]string, 0, len(r.Type))
	for _, t := range r.Type {
		out = append(out, t.String())
	}
	return out
}

func writeListJSON(w io.Writer, records []pokedex.Record, meta pagination.Meta) error {
	items := make([]listItem, 0, len(records))
	for _, r := range records {
		items = append(items, listItem{
			ID:     r.ID,
			Number: format.Number(r.ID),
			Name:   r.DisplayName(),
			Types:  typeNames(r),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listOutput{Items: items, Pagination: meta})
}

func writeListPlain(w io.Writer, records []pokedex.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // column padding
	fmt.Fprintln(tw, "#\tNAME\tTYPE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", format.Number(r.ID), r.DisplayName(), strings.Join(typeNames(r), ", "))
	}
	return tw.Flush()
}

func renderListTable(records []pokedex.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{format.Number(r.ID), r.DisplayName(), strings.Join(typeNames(r), ", ")})
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tui.ColorSubtle)).
		Headers("#", "Name", "Type").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.TableHeaderStyle.Padding(0, 1)
			}
			return cell
		}).
		String()
}
