package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"guestlist/session"
)

var sessionStatusStateFile string

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session is active.",
	Example: `
  # Check whether a session is active
  guestlist session status
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		statePath, err := resolveStatePath(sessionStatusStateFile)
		if err != nil {
			return err
		}

		state, err := session.Load(statePath)
		if err != nil {
			fmt.Println("No active session.")
			return nil
		}

		if !state.Active(time.Now()) {
			fmt.Printf("Session for %s expired at %s\n", state.User, state.ExpiresAt.Format(time.RFC3339))
			return nil
		}

		fmt.Printf("Active session for %s, expires at %s\n", state.User, state.ExpiresAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionStatusCmd)

	sessionStatusCmd.Flags().StringVar(&sessionStatusStateFile, "state-file", "", "Path to session state JSON (default: $HOME/.guestlist/session.json)")
}
