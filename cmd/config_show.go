package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"guestlist/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  guestlist config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use, showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("event.title: %s\n", cfg.Event.Title)
		fmt.Printf("event.location: %s\n", cfg.Event.Location)
		fmt.Printf("event.days: %s\n", cfg.Event.Days)
		fmt.Printf("event.country_code: %s\n", cfg.Event.CountryCode)
		fmt.Printf("event.accommodations: %d\n", len(cfg.Event.Accommodations))
		for i, name := range cfg.Event.Accommodations {
			fmt.Printf("event.accommodations[%d]: %s\n", i, name)
		}
		fmt.Printf("auth.required: %t\n", cfg.Auth.Required)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
