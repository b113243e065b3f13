package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage guestlist configuration file values.",
	Long: `Create, edit, and display the guestlist configuration file.

The configuration stores the event metadata and the import gate:
- event.title / event.location / event.days
- event.country_code
- event.accommodations
- auth.required`,
	Example: `
  # Create default config in $HOME/.guestlist.yaml
  guestlist config create

  # Show active config and source file
  guestlist config show

  # Open active config in editor (creates example if missing)
  guestlist config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
