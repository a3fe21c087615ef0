package testutil

import (
	"os"
	"testing"
)

// Update script paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// ScriptHelloWorld builds a window with two buttons and moves focus
	// between them.
	ScriptHelloWorld = "testdata/scripts/hello_world.yaml"

	// ScriptDanglingFocus ends with an update whose focus is not in the
	// tree.
	ScriptDanglingFocus = "testdata/scripts/dangling_focus.yaml"
)

// ResolveTestPath finds relativePath from the repository root or from a
// package up to five levels deep. Calls t.Skip if the file is missing.
func ResolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                     // Direct path (from repo root)
		"../../" + relativePath,          // From package two levels deep (e.g., pkg/wire/)
		"../../../" + relativePath,       // From package three levels deep
		"../../../../" + relativePath,    // From package four levels deep
		"../../../../../" + relativePath, // From package five levels deep
		"../" + relativePath,             // From a top-level package (e.g., adapter/)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("Test file not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// ReadTestFile reads a file located with ResolveTestPath.
func ReadTestFile(t *testing.T, relativePath string) []byte {
	t.Helper()
	data, err := os.ReadFile(ResolveTestPath(t, relativePath))
	if err != nil {
		t.Fatalf("read %s: %v", relativePath, err)
	}
	return data
}
