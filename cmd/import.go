package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"guestlist/config"
	"guestlist/importer"
	"guestlist/reconcile"
	"guestlist/session"
	"guestlist/storage"
)

var (
	importInputs    []string
	importFormat    string
	importDBPath    string
	importStateFile string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import JSON/CSV/Excel guest files into the local SQLite database",
	Long: `Read source files, normalize each row into canonical guest records, and merge
the batch against the guests already stored.

Existing guests are never overwritten: an incoming row whose (name, phone) pair
matches a stored guest is ignored, everything else is appended. When --format is
omitted, format is detected per file (extension, then content sniffing, else JSON).

When auth.required is set in configuration, an active session is required
("guestlist session login").`,
	Example: `
  # Import a confirmation spreadsheet
  guestlist import -i confirmacoes.xlsx

  # Import several files in one run
  guestlist import -i familia.xlsx -i amigos.csv --db ./guestlist.db

  # Force CSV parsing regardless of extension
  guestlist import -i lista_antiga.txt --format csv

  # Import with custom config file
  guestlist --configFile ./custom-guestlist.yaml import -i confirmacoes.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		if cfg.Auth.Required {
			statePath, pathErr := resolveStatePath(importStateFile)
			if pathErr != nil {
				return pathErr
			}
			if err := session.Require(statePath); err != nil {
				return err
			}
		}

		result, err := importer.Run(importInputs, importFormat)
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(importDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		existing, err := store.ListGuests()
		if err != nil {
			return err
		}

		merged := reconcile.Merge(existing, result.Guests)
		if err := store.ReplaceGuests(merged.Merged); err != nil {
			return err
		}
		if err := store.SetSetting(storage.SettingTitle, cfg.Event.Title); err != nil {
			return err
		}

		fmt.Println(importSummary(result, merged))
		return nil
	},
}

func importSummary(result *importer.Result, merged reconcile.Result) string {
	return fmt.Sprintf("Import completed. Files: %d, Rows read: %d, Added: %d, Ignored: %d, Total guests: %d",
		result.FilesProcessed,
		result.RowsRead,
		len(merged.Added),
		len(merged.Ignored),
		len(merged.Merged),
	)
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: json|csv|excel (optional, detected per file when omitted)")
	importCmd.Flags().StringVar(&importDBPath, "db", "./guestlist.db", "Path to local SQLite database")
	importCmd.Flags().StringVar(&importStateFile, "state-file", "", "Path to session state JSON (default: $HOME/.guestlist/session.json)")

	_ = importCmd.MarkFlagRequired("input")
}
