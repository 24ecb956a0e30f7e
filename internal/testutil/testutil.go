// Package testutil provides common test helpers for the monat project.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Pavinberg/monat/internal/paths"
)

// TempDir creates a temporary directory with symlinks resolved, so that
// canonicalized paths can be compared with it directly.
func TempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	return dir
}

// MkdirAll creates the given directories (relative to root) and returns root.
func MkdirAll(t *testing.T, root string, dirs ...string) string {
	t.Helper()

	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
	}
	return root
}

// WriteFile creates a file (relative to root) with the given content,
// creating parent directories as needed.
func WriteFile(t *testing.T, root, name, content string) string {
	t.Helper()

	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("WriteFile: mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: write failed: %v", err)
	}
	return path
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	return WriteFile(t, t.TempDir(), paths.ConfigFileName, content)
}

// WriteLocalHistory writes a project-local history file under dir with the
// given records, oldest first, and returns its path.
func WriteLocalHistory(t *testing.T, dir string, records ...string) string {
	t.Helper()

	return writeHistory(t, paths.LocalHistoryFile(dir), records)
}

// WriteGlobalHistory writes a global history file inside storeDir with the
// given records, oldest first, and returns its path.
func WriteGlobalHistory(t *testing.T, storeDir string, records ...string) string {
	t.Helper()

	return writeHistory(t, filepath.Join(storeDir, paths.HistoryFileName), records)
}

// ReadHistory reads a history file and returns its non-blank lines.
func ReadHistory(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadHistory: read failed: %v", err)
	}
	var records []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			records = append(records, line)
		}
	}
	return records
}

func writeHistory(t *testing.T, path string, records []string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("writeHistory: mkdir failed: %v", err)
	}
	content := ""
	if len(records) > 0 {
		content = strings.Join(records, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writeHistory: write failed: %v", err)
	}
	return path
}
