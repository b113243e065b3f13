package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"guestlist/config"
	"guestlist/output"
	"guestlist/storage"
)

var (
	exportFormat string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the guest list from SQLite to a styled Excel report or CSV",
	Long: `Export the stored guest list.

Formats:
- excel: styled workbook with guest table, summary, and duplicate warnings
- csv: plain guest table whose headers re-import cleanly

Output format can be selected explicitly via --format or inferred from the
--output extension (.csv is CSV, anything else is Excel).`,
	Example: `
  # Export the styled Excel report
  guestlist export --db ./guestlist.db --output ./isola70.xlsx

  # Export a round-trippable CSV
  guestlist export --db ./guestlist.db --output ./convidados.csv

  # Force CSV format independent of extension
  guestlist export --format csv --output ./convidados.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format := strings.TrimSpace(strings.ToLower(exportFormat))
		if format == "" {
			format = output.DetectFormat(exportOutput)
		}

		store, err := storage.OpenSQLite(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		guests, err := store.ListGuests()
		if err != nil {
			return err
		}

		switch format {
		case output.FormatCSV:
			if err := output.WriteGuestsCSVFile(exportOutput, guests); err != nil {
				return err
			}
		case output.FormatExcel:
			if err := output.WriteReportFile(exportOutput, guests, cfg.Event.Title, cfg.Event.CountryCode); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported export format: %s (supported: csv, excel)", exportFormat)
		}

		fmt.Printf("Export completed. Guests: %d, Format: %s, File: %s\n", len(guests), format, exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "./guestlist.db", "Path to local SQLite database")

	_ = exportCmd.MarkFlagRequired("output")
}
