package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/format"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
)

// ExportSheet is the worksheet name of xlsx exports.
const ExportSheet = "Pokedex"

// ErrUnsupportedExport is returned for output files that are neither .csv
// nor .xlsx.
var ErrUnsupportedExport = errors.New("export file must end with .csv or .xlsx")

//nolint:gochecknoglobals // Fixed export layout.
var exportHeader = []string{"ID", "Number", "Name", "Types"}

func newExportCmd(st *appState) *cobra.Command {
	var out, search string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to CSV or Excel",
		Example: `  pokedex export --user ash --out pokedex.xlsx
  pokedex export --user ash --search water --out water.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := st.requireSession(); err != nil {
				return err
			}
			records := st.dataset.Search(search)
			if err := exportRecords(out, records); err != nil {
				logger.Error().Ctx(cmd.Context()).Err(err).Str("out", out).Msg("export failed")
				return err
			}
			logger.Info().Ctx(cmd.Context()).Str("out", out).Int("records", len(records)).Msg("catalog exported")
			cmd.Printf("Exported %d Pokémon to %s\n", len(records), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (.csv or .xlsx)")
	cmd.Flags().StringVar(&search, "search", "", "export only records matching this search")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func exportRecords(path string, records []pokedex.Record) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, records)
	case ".xlsx":
		return writeXLSX(path, records)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedExport, path)
	}
}

func exportRow(r pokedex.Record) []string {
	return []string{strconv.Itoa(r.ID), format.Number(r.ID), r.DisplayName(), strings.Join(typeNames(r), ", ")}
}

func writeCSV(path string, records []pokedex.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err = w.Write(exportRow(r)); err != nil {
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeXLSX(path string, records []pokedex.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(ExportSheet)
	if err != nil {
		return err
	}
	if err = sw.SetColWidth(3, 4, 18); err != nil { //nolint:mnd // name and type columns
		return err
	}

	header := make([]interface{}, 0, len(exportHeader))
	for _, h := range exportHeader {
		header = append(header, excelize.Cell{StyleID: bold, Value: h})
	}
	if err = sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, r := range records {
		row := []interface{}{r.ID, format.Number(r.ID), r.DisplayName(), strings.Join(typeNames(r), ", ")}
		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2)
		if err = sw.SetRow(cellAddr, row); err != nil {
			return err
		}
	}
	if err = sw.Flush(); err != nil {
		return err
	}
	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
