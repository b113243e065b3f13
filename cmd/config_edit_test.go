package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveConfigEditPathPrefersFlagThenUsedFile(t *testing.T) {
	got, err := resolveConfigEditPath("./flag.yaml", "./used.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "./flag.yaml" {
		t.Fatalf("expected flag path to win, got %q", got)
	}

	got, err = resolveConfigEditPath("", "./used.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "./used.yaml" {
		t.Fatalf("expected used config path, got %q", got)
	}

	got, err = resolveConfigEditPath("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, ".guestlist.yaml") {
		t.Fatalf("expected home default path, got %q", got)
	}
}

func TestEnsureConfigFileWithTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".guestlist.yaml")

	created, err := ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected file to be created")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected template file to exist: %v", err)
	}
	if !strings.Contains(string(content), "event:") {
		t.Fatalf("expected event section in template, got:\n%s", content)
	}

	created, err = ensureConfigFileWithTemplate(path)
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if created {
		t.Fatalf("expected existing file to be left alone")
	}
}

func TestResolveEditorValue(t *testing.T) {
	if got := resolveEditorValue("code --wait", "nano"); got != "code --wait" {
		t.Fatalf("expected VISUAL to win, got %q", got)
	}
	if got := resolveEditorValue("", "nano"); got != "nano" {
		t.Fatalf("expected EDITOR fallback, got %q", got)
	}
	if got := resolveEditorValue(" ", ""); got != "vi" {
		t.Fatalf("expected vi fallback, got %q", got)
	}
}

func TestBuildEditorCommandSplitsArguments(t *testing.T) {
	cmd, err := buildEditorCommand("code --wait", "/tmp/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmd.Args) != 3 || cmd.Args[1] != "--wait" || cmd.Args[2] != "/tmp/config.yaml" {
		t.Fatalf("unexpected editor args: %v", cmd.Args)
	}

	if _, err := buildEditorCommand("   ", "/tmp/config.yaml"); err == nil {
		t.Fatalf("expected error for empty editor command")
	}
}
