package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayCommand(t *testing.T) {
	tests := []struct {
		name           string
		script         string
		steps          int
		json           bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:   "hello world",
			script: "hello_world.yaml",
			wantContain: []string{
				"initial tree, 3 nodes",
				"focus none -> 2",
				"focus 2 -> 3",
				`+ 4 StaticText`,
				"~ 1 Window \"Hello world\" [children]",
				"focus 3 -> none",
			},
			wantNotContain: []string{"rejected"},
		},
		{
			name:           "first two updates",
			script:         "hello_world.yaml",
			steps:          2,
			wantContain:    []string{"focus none -> 2"},
			wantNotContain: []string{"focus 2 -> 3"},
		},
		{
			name:        "rejected update is skipped",
			script:      "dangling_focus.yaml",
			wantContain: []string{"- 3 Button \"C\"", "rejected", "focus 3 is not in the tree", "focus 2 -> none"},
		},
		{
			name:        "json",
			script:      "hello_world.yaml",
			json:        true,
			wantContain: []string{`"kind": "node_added"`, `"kind": "focus_changed"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json
			replaySteps = tt.steps

			output, err := captureOutput(t, func() error {
				return runReplay([]string{testScriptPath(t, tt.script)})
			})
			require.NoError(t, err)

			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestReplayCommand_BadInput(t *testing.T) {
	resetFlags()

	_, err := captureOutput(t, func() error {
		return runReplay([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	})
	assert.Error(t, err)

	_, err = captureOutput(t, func() error {
		return runReplay([]string{writeScript(t, "name: empty\n")})
	})
	assert.ErrorContains(t, err, "no updates")

	replayLimits = "relaxed"
	_, err = captureOutput(t, func() error {
		return runReplay([]string{testScriptPath(t, "hello_world.yaml")})
	})
	assert.ErrorContains(t, err, "unknown limits preset")
}

func TestValidateCommand(t *testing.T) {
	resetFlags()

	output, err := captureOutput(t, func() error {
		return runValidate([]string{
			testScriptPath(t, "hello_world.yaml"),
			testScriptPath(t, "dangling_focus.yaml"),
		})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"✓", "hello_world.yaml", "dangling_focus.yaml"})
	assertNotContains(t, output, []string{"✗"})
}

func TestValidateCommand_Failures(t *testing.T) {
	resetFlags()

	bad := writeScript(t, `
updates:
  - root: 1
    nodes:
      - {id: 1, role: Window, props: {children: [2]}}
      - {id: 2, role: Button}
  - focus: 2
    expect_error: dangling_focus
  - nodes:
      - {id: 2, role: Group, props: {children: [1]}}
`)

	output, err := captureOutput(t, func() error {
		return runValidate([]string{bad})
	})
	require.Error(t, err)
	assertContains(t, output, []string{
		"✗",
		"update 2 (line 7): expected dangling_focus, but the update was accepted",
		"update 3 (line 9): rejected",
	})
}

func TestValidateCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runValidate([]string{testScriptPath(t, "dangling_focus.yaml")})
	})
	require.NoError(t, err)
	assertJSON(t, output)

	var reports []validateResult
	require.NoError(t, json.Unmarshal([]byte(output), &reports))
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Valid)
	assert.Equal(t, "script", reports[0].Limits)
}

func TestTreeCommand(t *testing.T) {
	tests := []struct {
		name           string
		steps          int
		depth          int
		filtered       bool
		ascii          bool
		json           bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "final tree",
			wantContain: []string{"1 Window \"Hello world\"", "├── 2 Button \"Button 1\"", "└── 4 StaticText"},
		},
		{
			name:           "after initial update",
			steps:          1,
			wantContain:    []string{"└── 3 Button \"Button 2\""},
			wantNotContain: []string{"StaticText", "(focused)"},
		},
		{
			name:           "focus marker",
			steps:          3,
			wantContain:    []string{"3 Button \"Button 2\" (focused)"},
			wantNotContain: []string{"2 Button \"Button 1\" (focused)"},
		},
		{
			name:           "ascii connectors",
			depth:          0,
			steps:          1,
			ascii:          true,
			wantContain:    []string{"|-- 2 Button", "`-- 3 Button"},
			wantNotContain: []string{"├──"},
		},
		{
			name:        "json",
			json:        true,
			filtered:    true,
			wantContain: []string{`"role": "Window"`, `"bounds": [`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json
			treeSteps = tt.steps
			treeDepth = tt.depth
			treeFiltered = tt.filtered
			treeASCII = tt.ascii

			output, err := captureOutput(t, func() error {
				return runTree([]string{testScriptPath(t, "hello_world.yaml")})
			})
			require.NoError(t, err)

			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestEncodeThenReplay(t *testing.T) {
	resetFlags()
	encodeOutput = filepath.Join(t.TempDir(), "hello.bin")

	output, err := captureOutput(t, func() error {
		return runEncode([]string{testScriptPath(t, "hello_world.yaml")})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"Wrote 5 updates"})

	output, err = captureOutput(t, func() error {
		return runReplay([]string{encodeOutput})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"initial tree, 3 nodes", "focus 2 -> 3", "focus 3 -> none"})
}

func TestVersionCommand(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return versionCmd.RunE(versionCmd, nil)
	})
	require.NoError(t, err)
	assertJSON(t, output)

	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(output), &info))
	assert.Equal(t, 1, info.WireFormat)
	assert.NotEmpty(t, info.GoVersion)
}

func TestReplayCommand_RejectedInitialUpdate(t *testing.T) {
	script := writeScript(t, `
updates:
  - nodes:
      - {id: 1, role: Window}
    expect_error: missing_root
  - root: 1
    nodes:
      - {id: 1, role: Window, props: {children: [2]}}
      - {id: 2, role: Button, props: {name: OK}}
  - focus: 2
`)

	resetFlags()
	output, err := captureOutput(t, func() error {
		return runReplay([]string{script})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"update 1: rejected",
		"update 2: initial tree, 2 nodes",
		"focus none -> 2",
	})

	resetFlags()
	output, err = captureOutput(t, func() error {
		return runValidate([]string{script})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"✓"})
	assertNotContains(t, output, []string{"✗"})
}

func TestEncodeCommand_NotesScriptOptions(t *testing.T) {
	resetFlags()
	encodeOutput = filepath.Join(t.TempDir(), "strict.bin")

	output, err := captureOutput(t, func() error {
		return runEncode([]string{testScriptPath(t, "dangling_focus.yaml")})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"script options are not encoded", "--limits strict"})
	assert.Contains(t, newEncodeCmd().Long, "strict_relations")

	encodeOutput = filepath.Join(t.TempDir(), "hello.bin")
	output, err = captureOutput(t, func() error {
		return runEncode([]string{testScriptPath(t, "hello_world.yaml")})
	})
	require.NoError(t, err)
	assertNotContains(t, output, []string{"not encoded"})
}

func TestReplayCommand_TruncatedStream(t *testing.T) {
	resetFlags()
	encodeOutput = filepath.Join(t.TempDir(), "hello.bin")
	_, err := captureOutput(t, func() error {
		return runEncode([]string{testScriptPath(t, "hello_world.yaml")})
	})
	require.NoError(t, err)

	data, err := os.ReadFile(encodeOutput)
	require.NoError(t, err)
	cut := filepath.Join(t.TempDir(), "cut.bin")
	require.NoError(t, os.WriteFile(cut, data[:len(data)-3], 0o644))

	_, err = captureOutput(t, func() error {
		return runReplay([]string{cut})
	})
	assert.ErrorContains(t, err, "update 5")
}
