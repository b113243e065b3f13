// Package session gates imports behind a local auth-state file. The file
// stands in for the external identity provider: the pipeline only ever asks
// whether a session is active.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthorized blocks an import before any file is read.
var ErrUnauthorized = errors.New("no active session")

const DefaultTTL = 12 * time.Hour

type State struct {
	User      string    `json:"user"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".guestlist", "session.json"), nil
}

// Load reads the state file. A missing or unreadable file is not an error
// here; callers decide via Active/Require.
func Load(path string) (State, error) {
	content, err := os.ReadFile(strings.TrimSpace(path))
	if err != nil {
		return State{}, fmt.Errorf("read session state file: %w", err)
	}

	var state State
	if err := json.Unmarshal(content, &state); err != nil {
		return State{}, fmt.Errorf("decode session state file: %w", err)
	}
	return state, nil
}

func (s State) Active(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	return s.ExpiresAt.After(now)
}

// Require returns ErrUnauthorized unless the state file holds an unexpired
// session.
func Require(path string) error {
	state, err := Load(path)
	if err != nil {
		return fmt.Errorf("%w: sign in first", ErrUnauthorized)
	}
	if !state.Active(time.Now()) {
		return fmt.Errorf("%w: session expired, sign in again", ErrUnauthorized)
	}
	return nil
}

// SignIn writes a fresh session state for user.
func SignIn(path, user string, ttl time.Duration) (State, error) {
	if strings.TrimSpace(user) == "" {
		return State{}, errors.New("user is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := time.Now()
	state := State{
		User:      strings.TrimSpace(user),
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return State{}, fmt.Errorf("create session state directory: %w", err)
	}

	content, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return State{}, fmt.Errorf("encode session state: %w", err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return State{}, fmt.Errorf("write session state file: %w", err)
	}

	return state, nil
}

// SignOut removes the state file. Signing out twice is not an error.
func SignOut(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session state file: %w", err)
	}
	return nil
}
