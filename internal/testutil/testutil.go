// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// Touch creates an empty file at dir/name.
func Touch(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, "")
}
