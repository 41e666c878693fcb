package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell script standing in for an external
// binary (gh, the agent CLI) and returns its path. The script body runs
// under sh.
func WriteStub(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write stub %s: %v", name, err)
	}
	return path
}

// WriteStateFile creates a file whose presence or content a stub script can
// use to vary its behavior across invocations. Returns the file path.
func WriteStateFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write state file %s: %v", name, err)
	}
	return path
}
