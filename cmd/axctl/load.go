package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/wire"
)

// classes is shared by every node the tool decodes.
var classes = node.NewClassSet()

// loadScript reads a YAML script, or a MessagePack stream when the file
// extension is .bin or .msgpack.
func loadScript(path string) (*wire.Script, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin", ".msgpack":
		return loadStream(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := wire.ParseScript(data, classes)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	return s, nil
}

func loadStream(path string) (*wire.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}
	defer f.Close()

	s := &wire.Script{Name: filepath.Base(path), Options: tree.DefaultOptions()}
	dec := wire.NewDecoder(f, classes)
	for {
		u, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return nil, fmt.Errorf("update %d: %w", len(s.Steps)+1, err)
		}
		s.Steps = append(s.Steps, wire.Step{Update: u})
	}
}

// scriptOptions returns the script's options, tightened by a --limits
// preset.
func scriptOptions(s *wire.Script, preset string) (tree.Options, error) {
	opts := s.Options
	switch preset {
	case "", "script":
	case "default":
		opts = tree.DefaultOptions()
	case "strict":
		opts = tree.StrictOptions()
	default:
		return opts, fmt.Errorf("unknown limits preset: %s (must be script, default, or strict)", preset)
	}
	return opts, nil
}
