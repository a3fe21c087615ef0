package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axtree/internal/testutil"
	"github.com/joshuapare/axtree/pkg/geom"
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
	"github.com/joshuapare/axtree/pkg/wire"
)

func TestParseScript_HelloWorld(t *testing.T) {
	data := testutil.ReadTestFile(t, testutil.ScriptHelloWorld)

	s, err := wire.ParseScript(data, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world", s.Name)
	require.Len(t, s.Steps, 5)

	tr, batch := testutil.SetupTree(t, s.Steps[0].Update)
	assert.Len(t, batch.Added(), 3)

	n, ok := tr.Node(id(2))
	require.True(t, ok)
	assert.True(t, n.SupportsAction(node.ActionFocus))
	bounds, _ := n.Bounds()
	assert.Equal(t, geom.NewRect(20, 20, 120, 60), bounds)

	for _, st := range s.Steps[1:] {
		assert.Empty(t, st.ExpectError)
		testutil.MustApply(t, tr, st.Update)
	}

	label, ok := tr.Node(id(4))
	require.True(t, ok)
	live, ok := label.Live()
	require.True(t, ok)
	assert.Equal(t, node.LivePolite, live)

	_, focused := tr.Focus()
	assert.False(t, focused, "last step clears focus")
}

func TestParseScript_DanglingFocus(t *testing.T) {
	s, err := wire.ParseScript(testutil.ReadTestFile(t, testutil.ScriptDanglingFocus), nil)
	require.NoError(t, err)
	assert.True(t, s.Options.StrictRelations)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, "dangling_focus", s.Steps[2].ExpectError)
	assert.Positive(t, s.Steps[2].Line)
}

func TestParseScript_PropertyKinds(t *testing.T) {
	src := `
updates:
  - root: 1
    root_scroller: 2
    focus: 2
    nodes:
      - id: 1
        role: window
        props:
          children: [2]
          transform: [2, 0, 0, 2, 10, 10]
          background_color: "#ff000080"
      - id: 0x00000000000000000000000000000002
        role: Slider
        actions: [increment, decrement, set_value]
        props:
          numeric_value: 0.25
          hierarchical_level: 3
          orientation: horizontal
          has_popup: Menu
          word_lengths: [3, 4]
          character_widths: [1.5, 2]
          text_selection:
            anchor: {node: 2, index: 0}
            focus: {node: 2, index: 2}
          custom_actions:
            - {id: 7, description: Reset}
          hidden: false
`
	s, err := wire.ParseScript([]byte(src), nil)
	require.NoError(t, err)
	require.Len(t, s.Steps, 1)

	u := s.Steps[0].Update
	require.NotNil(t, u.Tree)
	assert.Equal(t, tree.Info{Root: id(1), RootScroller: id(2)}, *u.Tree)
	require.NotNil(t, u.Focus)
	assert.Equal(t, id(2), *u.Focus)

	require.Len(t, u.Nodes, 2)
	win, slider := u.Nodes[0].Node, u.Nodes[1].Node
	assert.Equal(t, id(2), u.Nodes[1].ID)

	xf, _ := win.Transform()
	assert.Equal(t, geom.NewAffine(2, 0, 0, 2, 10, 10), xf)
	color, _ := win.BackgroundColor()
	assert.Equal(t, uint32(0xff000080), color)

	assert.Equal(t, node.RoleSlider, slider.Role())
	assert.Equal(t, 3, slider.Actions().Len())
	v, _ := slider.NumericValue()
	assert.Equal(t, 0.25, v)
	lvl, _ := slider.HierarchicalLevel()
	assert.Equal(t, 3, lvl)
	o, _ := slider.Orientation()
	assert.Equal(t, node.OrientationHorizontal, o)
	assert.Equal(t, []uint8{3, 4}, slider.WordLengths())
	assert.Equal(t, []float32{1.5, 2}, slider.CharacterWidths())
	sel, _ := slider.TextSelection()
	assert.Equal(t, 2, sel.Focus.CharacterIndex)
	assert.Equal(t, []node.CustomAction{{ID: 7, Description: "Reset"}}, slider.CustomActions())
	hidden, ok := slider.Hidden()
	assert.True(t, ok)
	assert.False(t, hidden)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind types.ErrKind
	}{
		{"bad yaml", "updates: [", types.ErrKindFormat},
		{"unknown role", "updates:\n  - nodes:\n      - {id: 1, role: Spaceship}", types.ErrKindNotFound},
		{"unknown action", "updates:\n  - nodes:\n      - {id: 1, actions: [Fly]}", types.ErrKindNotFound},
		{"unknown property", "updates:\n  - nodes:\n      - {id: 1, props: {wingspan: 3}}", types.ErrKindNotFound},
		{"wrong value type", "updates:\n  - nodes:\n      - {id: 1, props: {hidden: [1]}}", types.ErrKindFormat},
		{"bad enum", "updates:\n  - nodes:\n      - {id: 1, props: {live: Shouting}}", types.ErrKindNotFound},
		{"short rect", "updates:\n  - nodes:\n      - {id: 1, props: {bounds: [1, 2]}}", types.ErrKindFormat},
		{"zero id", "updates:\n  - nodes:\n      - {id: 0}", types.ErrKindFormat},
		{"missing id", "updates:\n  - nodes:\n      - {role: Button}", types.ErrKindFormat},
		{"scroller without root", "updates:\n  - root_scroller: 2", types.ErrKindFormat},
		{"unknown expected error", "updates:\n  - expect_error: explosion", types.ErrKindFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wire.ParseScript([]byte(tt.src), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, &types.Error{Kind: tt.kind})
		})
	}
}
