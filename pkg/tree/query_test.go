package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axtree/internal/testutil"
	"github.com/joshuapare/axtree/pkg/geom"
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
)

// layoutTree builds:
//
//	1 window (0,0)-(200,200)
//	├── 2 generic container, translated by (100,0), clips children
//	│   ├── 4 button (0,0)-(50,50)
//	│   └── 5 presentation
//	│       └── 6 text (0,60)-(90,80), extends outside 2 when clipped
//	└── 3 button (0,0)-(80,80), hidden
func layoutTree(t *testing.T) *tree.Tree {
	t.Helper()
	u := tree.NewUpdate().
		Add(id(1), node.NewBuilder(node.RoleWindow).
			SetChildren(testutil.IDs(2, 3)).
			SetBounds(geom.NewRect(0, 0, 200, 200)).
			Build(nil)).
		Add(id(2), node.NewBuilder(node.RoleGenericContainer).
			SetChildren(testutil.IDs(4, 5)).
			SetTransform(geom.Translate(geom.Vec2{X: 100})).
			SetBounds(geom.NewRect(0, 0, 100, 70)).
			SetClipsChildren(true).
			Build(nil)).
		Add(id(3), node.NewBuilder(node.RoleButton).
			SetBounds(geom.NewRect(0, 0, 80, 80)).
			SetHidden(true).
			Build(nil)).
		Add(id(4), node.NewBuilder(node.RoleButton).
			SetName("ok").
			SetBounds(geom.NewRect(0, 0, 50, 50)).
			Build(nil)).
		Add(id(5), testutil.Parent(node.RolePresentation, 6)).
		Add(id(6), node.NewBuilder(node.RoleStaticText).
			SetName("caption").
			SetBounds(geom.NewRect(0, 60, 90, 80)).
			Build(nil)).
		SetRoot(id(1))
	tr, _ := testutil.SetupTree(t, u)
	return tr
}

func TestQuery_Structure(t *testing.T) {
	tr := layoutTree(t)

	assert.Equal(t, testutil.IDs(4, 5), tr.Children(id(2)))
	assert.Nil(t, tr.Children(id(99)))

	_, ok := tr.Parent(id(1))
	assert.False(t, ok, "root has no parent")

	idx, ok := tr.IndexInParent(id(5))
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	assert.Equal(t, testutil.IDs(5, 2, 1), tr.Ancestors(id(6)))
	assert.Equal(t, 3, tr.Depth(id(6)))
	assert.Equal(t, 0, tr.Depth(id(1)))

	var order []types.NodeID
	tr.Walk(func(nid types.NodeID, n *node.Node) bool {
		require.NotNil(t, n)
		order = append(order, nid)
		return true
	})
	assert.Equal(t, testutil.IDs(1, 2, 4, 5, 6, 3), order)

	var first []types.NodeID
	tr.Walk(func(nid types.NodeID, _ *node.Node) bool {
		first = append(first, nid)
		return len(first) < 2
	})
	assert.Equal(t, testutil.IDs(1, 2), first)
}

func TestQuery_FilteredChildren(t *testing.T) {
	tr := layoutTree(t)

	// 2 is an unnamed generic container and 5 is presentational: both are
	// flattened. 3 is hidden and dropped.
	assert.Equal(t, testutil.IDs(4, 6), tr.FilteredChildren(id(1), nil))

	parent, ok := tr.FilteredParent(id(6), nil)
	require.True(t, ok)
	assert.Equal(t, id(1), parent)

	// Focus overrides hidden.
	testutil.MustApply(t, tr, tree.NewUpdate().SetFocus(id(3)))
	assert.Equal(t, testutil.IDs(4, 6, 3), tr.FilteredChildren(id(1), nil))

	everything := func(types.NodeID, *node.Node) tree.FilterResult { return tree.Include }
	assert.Equal(t, testutil.IDs(2, 3), tr.FilteredChildren(id(1), everything))
}

func TestQuery_BoundingBox(t *testing.T) {
	tr := layoutTree(t)

	bb, ok := tr.BoundingBox(id(4))
	require.True(t, ok)
	assert.Equal(t, geom.NewRect(100, 0, 150, 50), bb)

	_, ok = tr.BoundingBox(id(5))
	assert.False(t, ok, "node without bounds")

	_, ok = tr.BoundingBox(id(42))
	assert.False(t, ok)

	assert.Equal(t, geom.Translate(geom.Vec2{X: 100}), tr.TransformToRoot(id(6)))
	assert.Equal(t, geom.Identity, tr.TransformToRoot(id(42)))
}

func TestQuery_HitTest(t *testing.T) {
	tr := layoutTree(t)

	tests := []struct {
		name  string
		point geom.Point
		want  types.NodeID
		hit   bool
	}{
		{"button inside translated container", geom.Pt(110, 10), id(4), true},
		{"text inside clip", geom.Pt(150, 65), id(6), true},
		{"text outside clip", geom.Pt(150, 75), id(1), true},
		{"hidden button falls through to root", geom.Pt(10, 10), id(1), true},
		{"outside everything", geom.Pt(500, 500), types.InvalidNodeID, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.HitTest(tt.point, nil)
			assert.Equal(t, tt.hit, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_Relations(t *testing.T) {
	tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	testutil.MustApply(t, tr, tree.NewUpdate().Add(id(2),
		node.NewBuilder(node.RoleButton).
			SetLabelledBy(testutil.IDs(3, 77)).
			SetActiveDescendant(id(3)).
			Build(nil)))

	assert.Equal(t, testutil.IDs(3), tr.Relations(id(2), node.PropLabelledBy))
	assert.Equal(t, testutil.IDs(3), tr.Relations(id(2), node.PropActiveDescendant))
	assert.Nil(t, tr.Relations(id(2), node.PropDescribedBy))
	assert.Nil(t, tr.Relations(id(2), node.PropName), "not a relation")
	assert.Nil(t, tr.Relations(id(99), node.PropLabelledBy))

	// The node itself still carries the dangling id.
	n, _ := tr.Node(id(2))
	assert.Equal(t, testutil.IDs(3, 77), n.LabelledBy())
}

func TestChangeBatch_Helpers(t *testing.T) {
	var nilBatch *tree.ChangeBatch
	assert.True(t, nilBatch.IsEmpty())
	assert.Nil(t, nilBatch.Changes())
	assert.Nil(t, nilBatch.Added())

	b := tree.NewChangeBatch(
		tree.NodeRemoved{ID: id(3)},
		tree.NodeAdded{ID: id(4)},
		tree.NodeAdded{ID: id(5)},
		tree.FocusChanged{New: id(4)},
	)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, map[tree.ChangeKind]int{
		tree.ChangeNodeRemoved: 1,
		tree.ChangeNodeAdded:   2,
		tree.ChangeFocus:       1,
	}, b.CountByKind())

	changes := b.Changes()
	changes[0] = nil
	assert.NotNil(t, b.Changes()[0], "Changes returns a copy")

	assert.Equal(t, "node_added", tree.ChangeNodeAdded.String())
}
