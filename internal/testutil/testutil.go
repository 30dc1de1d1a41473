// Package testutil provides shared helpers for teamgen tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteSettings writes a settings file into a fresh temp directory and
// returns its path. The directory is cleaned up when the test completes.
func WriteSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "team.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	return path
}
