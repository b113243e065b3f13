/*
Copyright © 2026 guestlist authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"guestlist/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "guestlist",
	Short: "Import, reconcile, and export the guest list of a single private event.",
	Long: `
**********************************************
*               GUESTLIST                    *
**********************************************

This CLI imports guest spreadsheets and exports (JSON, CSV, Excel), normalizes
each row into canonical Portuguese values, merges new batches against the local
SQLite database without ever overwriting existing guests, and exports a styled
Excel report or a round-trippable CSV.

Supported input formats:
- JSON: array of objects (the app's own export format)
- CSV: .csv
- Excel: .xlsx, .xlsm, .xls
`,
	Example: `
  # Create configuration file
  guestlist config create

  # Import a confirmation spreadsheet
  guestlist import -i confirmacoes.xlsx

  # Import a legacy CSV with explicit format
  guestlist import -i lista_antiga.txt --format csv

  # Print aggregate statistics
  guestlist stats

  # Export the styled Excel report
  guestlist export --output ./isola70.xlsx

  # Export a round-trippable CSV
  guestlist export --output ./convidados.csv

  # Start the local web UI
  guestlist serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.guestlist.yaml, then ./.guestlist.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	switch cmd.Name() {
	case "import", "export", "serve":
		return true
	}
	return false
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".guestlist" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".guestlist")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Defaults cover everything, so a missing file only deserves a hint.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: guestlist config create")
	}
}
