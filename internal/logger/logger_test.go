package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: false, Output: &buf}))
	Info("dropped")
	assert.Empty(t, buf.String())
}

func TestInit_JSON(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Format: FormatJSON, Level: slog.LevelDebug, Output: &buf}))
	Debug("update rejected", "kind", "cycle")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "update rejected", rec["msg"])
	assert.Equal(t, "cycle", rec["kind"])
}

func TestInit_LevelFilters(t *testing.T) {
	t.Cleanup(func() { _ = Init(Options{}) })

	var buf bytes.Buffer
	require.NoError(t, Init(Options{Enabled: true, Level: slog.LevelWarn, Output: &buf}))
	Info("quiet")
	Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestInit_UnknownFormat(t *testing.T) {
	err := Init(Options{Enabled: true, Format: "xml", Output: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, name := range []string{
		"axtree-2026-01-01.log", // past retention
		"axtree-2026-02-27.log",
		"axtree-garbage.log",
		"other.log",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	cleanOldLogs(dir, now)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"axtree-2026-02-27.log", "axtree-garbage.log", "other.log"}, names)
}
