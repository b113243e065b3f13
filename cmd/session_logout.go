package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"guestlist/session"
)

var sessionLogoutStateFile string

var sessionLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the active session.",
	Long:  `Remove the session state file. Signing out twice is not an error.`,
	Example: `
  # Sign out
  guestlist session logout
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		statePath, err := resolveStatePath(sessionLogoutStateFile)
		if err != nil {
			return err
		}

		if err := session.SignOut(statePath); err != nil {
			return err
		}

		fmt.Println("Session ended.")
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionLogoutCmd)

	sessionLogoutCmd.Flags().StringVar(&sessionLogoutStateFile, "state-file", "", "Path to session state JSON (default: $HOME/.guestlist/session.json)")
}
