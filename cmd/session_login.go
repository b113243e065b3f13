package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"guestlist/session"
)

var (
	sessionLoginUser      string
	sessionLoginTTL       time.Duration
	sessionLoginStateFile string
)

var sessionLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Start a session and save its state file.",
	Long: `Create a fresh session for the given user and write the state file.

The session expires after --ttl; an expired session blocks imports exactly
like a missing one.`,
	Example: `
  # Sign in for the default 12 hours
  guestlist session login --user maria

  # Sign in for a whole weekend
  guestlist session login --user maria --ttl 72h
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		statePath, err := resolveStatePath(sessionLoginStateFile)
		if err != nil {
			return err
		}

		state, err := session.SignIn(statePath, sessionLoginUser, sessionLoginTTL)
		if err != nil {
			return err
		}

		fmt.Printf("Session started for %s, expires at %s\n", state.User, state.ExpiresAt.Format(time.RFC3339))
		fmt.Printf("Session state saved: %s\n", statePath)
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionLoginCmd)

	sessionLoginCmd.Flags().StringVarP(&sessionLoginUser, "user", "u", "", "User name recorded in the session")
	sessionLoginCmd.Flags().DurationVar(&sessionLoginTTL, "ttl", session.DefaultTTL, "Session lifetime")
	sessionLoginCmd.Flags().StringVar(&sessionLoginStateFile, "state-file", "", "Path to session state JSON (default: $HOME/.guestlist/session.json)")

	_ = sessionLoginCmd.MarkFlagRequired("user")
}
