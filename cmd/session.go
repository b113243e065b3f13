package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"guestlist/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage the session that authorizes imports.",
	Long: `Session helpers for the import authorization gate.

Imports only require a session when auth.required is set in configuration.
The session lives in a local state file and expires on its own.`,
	Example: `
  # Sign in for the default 12 hours
  guestlist session login --user maria

  # Check whether a session is active
  guestlist session status

  # Sign out
  guestlist session logout
`,
}

func resolveStatePath(flagValue string) (string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue, nil
	}

	path, err := session.DefaultStatePath()
	if err != nil {
		return "", fmt.Errorf("resolve session state path: %w", err)
	}
	return path, nil
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
