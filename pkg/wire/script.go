package wire

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
)

// Script is a named sequence of updates read from YAML.
type Script struct {
	Name    string
	Options tree.Options
	Steps   []Step
}

// Step is one update of a script.
type Step struct {
	Update *tree.Update
	// ExpectError names the tree.ErrorKind the update must be rejected
	// with, such as "dangling_focus". Empty when the update must apply.
	ExpectError string
	Line        int
}

type scriptDoc struct {
	Name    string        `yaml:"name"`
	Options scriptOptions `yaml:"options"`
	Updates []scriptStep  `yaml:"updates"`
}

type scriptOptions struct {
	StrictRelations bool `yaml:"strict_relations"`
	MaxNodes        int  `yaml:"max_nodes"`
	MaxDepth        int  `yaml:"max_depth"`
}

type scriptStep struct {
	Root         *types.NodeID `yaml:"root"`
	RootScroller *types.NodeID `yaml:"root_scroller"`
	Focus        *yaml.Node    `yaml:"focus"`
	Nodes        []scriptNode  `yaml:"nodes"`
	ExpectError  string        `yaml:"expect_error"`
	line         int
}

type scriptNode struct {
	ID      types.NodeID         `yaml:"id"`
	Role    string               `yaml:"role"`
	Actions []string             `yaml:"actions"`
	Props   map[string]yaml.Node `yaml:"props"`
}

type scriptPosition struct {
	Node  types.NodeID `yaml:"node"`
	Index int          `yaml:"index"`
}

type scriptSelection struct {
	Anchor scriptPosition `yaml:"anchor"`
	Focus  scriptPosition `yaml:"focus"`
}

type scriptCustomAction struct {
	ID          int32  `yaml:"id"`
	Description string `yaml:"description"`
}

// UnmarshalYAML records the step's line for error messages.
func (s *scriptStep) UnmarshalYAML(value *yaml.Node) error {
	type plain scriptStep
	if err := value.Decode((*plain)(s)); err != nil {
		return err
	}
	s.line = value.Line
	return nil
}

// ParseScript reads a YAML update script. Nodes are interned in classes,
// which may be nil. Errors carry the line of the offending update.
func ParseScript(data []byte, classes *node.ClassSet) (*Script, error) {
	var doc scriptDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, types.Wrap(types.ErrKindFormat, err, "parse script")
	}

	s := &Script{
		Name: doc.Name,
		Options: tree.Options{
			StrictRelations: doc.Options.StrictRelations,
			MaxNodes:        doc.Options.MaxNodes,
			MaxDepth:        doc.Options.MaxDepth,
		},
		Steps: make([]Step, 0, len(doc.Updates)),
	}
	for i := range doc.Updates {
		st := &doc.Updates[i]
		u, err := st.build(classes)
		if err != nil {
			return nil, fmt.Errorf("parse script: update %d (line %d): %w", i+1, st.line, err)
		}
		if st.ExpectError != "" && !knownErrorKind(st.ExpectError) {
			return nil, types.Errorf(types.ErrKindFormat,
				"parse script: update %d (line %d): unknown expect_error %q", i+1, st.line, st.ExpectError)
		}
		s.Steps = append(s.Steps, Step{Update: u, ExpectError: st.ExpectError, Line: st.line})
	}
	return s, nil
}

func (st *scriptStep) build(classes *node.ClassSet) (*tree.Update, error) {
	u := tree.NewUpdate()
	for _, sn := range st.Nodes {
		n, err := sn.build(classes)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", sn.ID, err)
		}
		u.Add(sn.ID, n)
	}

	switch {
	case st.Root != nil:
		info := tree.Info{Root: *st.Root}
		if st.RootScroller != nil {
			info.RootScroller = *st.RootScroller
		}
		u.SetTree(info)
	case st.RootScroller != nil:
		return nil, types.Errorf(types.ErrKindFormat, "root_scroller needs root")
	}

	if st.Focus != nil {
		if strings.EqualFold(st.Focus.Value, "none") {
			u.ClearFocus()
		} else {
			var focus types.NodeID
			if err := st.Focus.Decode(&focus); err != nil {
				return nil, fmt.Errorf("focus: %w", err)
			}
			u.SetFocus(focus)
		}
	}
	return u, nil
}

func (sn *scriptNode) build(classes *node.ClassSet) (*node.Node, error) {
	if sn.ID.IsZero() {
		return nil, types.Errorf(types.ErrKindFormat, "missing id")
	}
	role := node.RoleUnknown
	if sn.Role != "" {
		var err error
		if role, err = node.ParseRole(sn.Role); err != nil {
			return nil, err
		}
	}

	b := node.NewBuilder(role)
	for _, name := range sn.Actions {
		a, err := node.ParseAction(name)
		if err != nil {
			return nil, err
		}
		b.AddAction(a)
	}
	for name, value := range sn.Props {
		prop, ok := node.LookupProperty(name)
		if !ok {
			return nil, types.Errorf(types.ErrKindNotFound, "line %d: unknown property %q", value.Line, name)
		}
		v, err := scriptValue(prop, &value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", value.Line, prop, err)
		}
		if err := b.Set(prop, v); err != nil {
			return nil, err
		}
	}
	return b.Build(classes), nil
}

// scriptValue decodes a YAML property value into the Go type Builder.Set
// expects.
func scriptValue(prop node.PropertyID, value *yaml.Node) (any, error) {
	switch prop.Kind() {
	case node.KindFlag:
		return decodeYAML[bool](value)
	case node.KindNodeIDList:
		return decodeYAML[[]types.NodeID](value)
	case node.KindNodeID:
		return decodeYAML[types.NodeID](value)
	case node.KindString:
		return decodeYAML[string](value)
	case node.KindFloat:
		return decodeYAML[float64](value)
	case node.KindInt:
		return decodeYAML[int](value)
	case node.KindColor:
		// Hex text such as 0xff0000ff or #ff0000ff.
		s := strings.TrimPrefix(value.Value, "#")
		base := 0
		if s != value.Value {
			base = 16
		}
		c, err := strconv.ParseUint(s, base, 32)
		if err != nil {
			return nil, types.Wrap(types.ErrKindFormat, err, "invalid color")
		}
		return uint32(c), nil
	case node.KindEnum:
		return node.ParseEnumValue(prop, value.Value)
	case node.KindLengths:
		return decodeYAML[[]uint8](value)
	case node.KindCoords:
		return decodeYAML[[]float32](value)
	case node.KindAffine:
		c, err := decodeYAML[[]float64](value)
		if err != nil {
			return nil, err
		}
		return affineFrom(c)
	case node.KindRect:
		c, err := decodeYAML[[]float64](value)
		if err != nil {
			return nil, err
		}
		return rectFrom(c)
	case node.KindTextSelection:
		s, err := decodeYAML[scriptSelection](value)
		if err != nil {
			return nil, err
		}
		return node.TextSelection{
			Anchor: node.TextPosition{Node: s.Anchor.Node, CharacterIndex: s.Anchor.Index},
			Focus:  node.TextPosition{Node: s.Focus.Node, CharacterIndex: s.Focus.Index},
		}, nil
	case node.KindCustomActions:
		list, err := decodeYAML[[]scriptCustomAction](value)
		if err != nil {
			return nil, err
		}
		out := make([]node.CustomAction, len(list))
		for i, a := range list {
			out[i] = node.CustomAction{ID: a.ID, Description: a.Description}
		}
		return out, nil
	}
	return nil, types.Errorf(types.ErrKindNotFound, "unknown property %s", prop)
}

func decodeYAML[T any](value *yaml.Node) (T, error) {
	var v T
	if err := value.Decode(&v); err != nil {
		return v, types.Wrap(types.ErrKindFormat, err, fmt.Sprintf("expected %T", v))
	}
	return v, nil
}

func knownErrorKind(name string) bool {
	for k := tree.KindMissingRoot; k <= tree.KindLimitExceeded; k++ {
		if k.String() == name {
			return true
		}
	}
	return false
}
