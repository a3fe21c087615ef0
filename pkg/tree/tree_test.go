package tree_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axtree/internal/testutil"
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
)

var id = testutil.ID

func TestNew_InitialUpdate(t *testing.T) {
	tr, batch := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	require.True(t, tr.IsInitialized())
	assert.Equal(t, id(1), tr.Root())
	assert.Equal(t, 3, tr.Len())

	added := batch.Added()
	require.Len(t, added, 3)
	assert.Equal(t, testutil.IDs(1, 2, 3), testutil.ChangeIDs(batch))
	assert.Empty(t, batch.Removed())
	assert.Empty(t, batch.Updated())

	_, focusChanged := batch.Focus()
	assert.False(t, focusChanged)
	_, treeChanged := batch.Tree()
	assert.False(t, treeChanged, "first update never reports a root change")
}

func TestApply_ThreeStepScenario(t *testing.T) {
	tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	// Drop C from A's children without sending C.
	batch := testutil.MustApply(t, tr, tree.NewUpdate().
		Add(id(1), testutil.Parent(node.RoleWindow, 2)))

	removed := batch.Removed()
	require.Len(t, removed, 1)
	assert.Equal(t, id(3), removed[0].ID)
	name, _ := removed[0].Node.Name()
	assert.Equal(t, "C", name)
	assert.Empty(t, batch.Added())
	assert.False(t, tr.Contains(id(3)))

	// A itself changed (children list), so it is reported as updated.
	updated := batch.Updated()
	require.Len(t, updated, 1)
	assert.Equal(t, id(1), updated[0].ID)
	assert.Equal(t, []node.PropertyID{node.PropChildren}, updated[0].ChangedProperties())

	// Focus B.
	batch = testutil.MustApply(t, tr, tree.NewUpdate().SetFocus(id(2)))
	fc, ok := batch.Focus()
	require.True(t, ok)
	assert.True(t, fc.Old.IsZero())
	assert.Equal(t, id(2), fc.New)
	assert.Equal(t, 1, batch.Len())

	focus, ok := tr.Focus()
	require.True(t, ok)
	assert.Equal(t, id(2), focus)
}

func TestApply_DanglingFocusLeavesTreeUnchanged(t *testing.T) {
	tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	batch, err := tr.Apply(tree.NewUpdate().
		Add(id(3), testutil.Leaf(node.RoleButton, "C2")).
		SetFocus(id(99)))
	require.Error(t, err)
	assert.Nil(t, batch)
	assert.ErrorIs(t, err, tree.ErrDanglingFocus)

	var verr *tree.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, id(99), verr.ID)

	// The rejected overlay of node 3 must not have leaked.
	n, ok := tr.Node(id(3))
	require.True(t, ok)
	name, _ := n.Name()
	assert.Equal(t, "C", name)

	// A valid follow-up sees every prior node.
	batch = testutil.MustApply(t, tr, tree.NewUpdate().SetFocus(id(3)))
	assert.Equal(t, 1, batch.Len())
	for _, want := range testutil.IDs(1, 2, 3) {
		assert.True(t, tr.Contains(want), "node %s", want)
	}
}

func TestApply_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		update func() *tree.Update
		want   error
		kind   tree.ErrorKind
	}{
		{
			name: "missing child",
			update: func() *tree.Update {
				return tree.NewUpdate().Add(id(1), testutil.Parent(node.RoleWindow, 2, 4))
			},
			want: tree.ErrDanglingReference,
			kind: tree.KindDanglingReference,
		},
		{
			name: "cycle through root",
			update: func() *tree.Update {
				return tree.NewUpdate().Add(id(2), testutil.Parent(node.RoleGroup, 1))
			},
			want: tree.ErrCycle,
			kind: tree.KindCycle,
		},
		{
			name: "self loop",
			update: func() *tree.Update {
				return tree.NewUpdate().Add(id(2), testutil.Parent(node.RoleGroup, 2))
			},
			want: tree.ErrCycle,
			kind: tree.KindCycle,
		},
		{
			name: "two parents",
			update: func() *tree.Update {
				return tree.NewUpdate().Add(id(2), testutil.Parent(node.RoleGroup, 3))
			},
			want: tree.ErrMultiParent,
			kind: tree.KindMultiParent,
		},
		{
			name: "duplicate child entry",
			update: func() *tree.Update {
				return tree.NewUpdate().Add(id(1), testutil.Parent(node.RoleWindow, 2, 2))
			},
			want: tree.ErrMultiParent,
			kind: tree.KindMultiParent,
		},
		{
			name: "zero node id",
			update: func() *tree.Update {
				return tree.NewUpdate().Add(types.InvalidNodeID, testutil.Leaf(node.RoleButton, "x"))
			},
			want: tree.ErrInvalidIdentifier,
			kind: tree.KindInvalidIdentifier,
		},
		{
			name: "nil node",
			update: func() *tree.Update {
				return tree.NewUpdate().Add(id(2), nil)
			},
			want: tree.ErrInvalidIdentifier,
			kind: tree.KindInvalidIdentifier,
		},
		{
			name: "zero child id",
			update: func() *tree.Update {
				n := node.NewBuilder(node.RoleWindow).
					SetChildren([]types.NodeID{id(2), types.InvalidNodeID}).
					Build(nil)
				return tree.NewUpdate().Add(id(1), n)
			},
			want: tree.ErrInvalidIdentifier,
			kind: tree.KindInvalidIdentifier,
		},
		{
			name: "zero root declaration",
			update: func() *tree.Update {
				return tree.NewUpdate().SetRoot(types.InvalidNodeID)
			},
			want: tree.ErrInvalidIdentifier,
			kind: tree.KindInvalidIdentifier,
		},
		{
			name: "new root not defined",
			update: func() *tree.Update {
				return tree.NewUpdate().SetRoot(id(50))
			},
			want: tree.ErrDanglingReference,
			kind: tree.KindDanglingReference,
		},
		{
			name: "root scroller pruned",
			update: func() *tree.Update {
				return tree.NewUpdate().SetTree(tree.Info{Root: id(1), RootScroller: id(40)})
			},
			want: tree.ErrDanglingReference,
			kind: tree.KindDanglingReference,
		},
		{
			name: "focus on pruned node",
			update: func() *tree.Update {
				return tree.NewUpdate().
					Add(id(1), testutil.Parent(node.RoleWindow, 2)).
					SetFocus(id(3))
			},
			want: tree.ErrDanglingFocus,
			kind: tree.KindDanglingFocus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

			_, err := tr.Apply(tt.update())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var verr *tree.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.kind, verr.Kind)
			assert.NotEmpty(t, verr.Error())

			// Rejected updates never touch the tree.
			assert.Equal(t, 3, tr.Len())
			assert.Equal(t, id(1), tr.Root())
			assert.Equal(t, testutil.IDs(2, 3), tr.Children(id(1)))
		})
	}
}

func TestApply_MissingRoot(t *testing.T) {
	tr := tree.Empty(tree.DefaultOptions())

	_, err := tr.Apply(tree.NewUpdate().Add(id(1), testutil.Leaf(node.RoleWindow, "w")))
	require.ErrorIs(t, err, tree.ErrMissingRoot)
	assert.False(t, tr.IsInitialized())
	assert.Equal(t, 0, tr.Len())

	_, _, err = tree.New(nil, tree.DefaultOptions())
	assert.ErrorIs(t, err, tree.ErrMissingRoot)
}

func TestApply_ForwardReferenceInBatch(t *testing.T) {
	tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	// Node 4 is listed as a child before it is defined.
	batch := testutil.MustApply(t, tr, tree.NewUpdate().
		Add(id(2), testutil.Parent(node.RoleGroup, 4)).
		Add(id(4), testutil.Leaf(node.RoleStaticText, "late")))

	assert.True(t, tr.Contains(id(4)))
	p, ok := tr.Parent(id(4))
	require.True(t, ok)
	assert.Equal(t, id(2), p)
	require.Len(t, batch.Added(), 1)
	assert.Equal(t, id(4), batch.Added()[0].ID)
}

func TestApply_LastWriteWins(t *testing.T) {
	tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	testutil.MustApply(t, tr, tree.NewUpdate().
		Add(id(2), testutil.Leaf(node.RoleButton, "first")).
		Add(id(2), testutil.Leaf(node.RoleButton, "second")))

	n, _ := tr.Node(id(2))
	name, _ := n.Name()
	assert.Equal(t, "second", name)
}

func TestApply_Idempotent(t *testing.T) {
	tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	batch := testutil.MustApply(t, tr, testutil.ThreeNodeUpdate())
	assert.True(t, batch.IsEmpty(), "re-sending identical nodes yields no changes: %v", batch.Changes())

	batch = testutil.MustApply(t, tr, nil)
	assert.True(t, batch.IsEmpty())
}

func TestApply_UnreachableNodesArePruned(t *testing.T) {
	tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	batch := testutil.MustApply(t, tr, tree.NewUpdate().
		Add(id(7), testutil.Leaf(node.RoleButton, "orphan")))

	assert.False(t, tr.Contains(id(7)))
	assert.True(t, batch.IsEmpty())
}

func TestApply_SubtreeRemovalOrder(t *testing.T) {
	initial := tree.NewUpdate().
		Add(id(1), testutil.Parent(node.RoleWindow, 2, 5)).
		Add(id(2), testutil.Parent(node.RoleGroup, 3, 4)).
		Add(id(3), testutil.Leaf(node.RoleButton, "x")).
		Add(id(4), testutil.Leaf(node.RoleButton, "y")).
		Add(id(5), testutil.Leaf(node.RoleButton, "z")).
		SetRoot(id(1))
	tr, _ := testutil.SetupTree(t, initial)

	batch := testutil.MustApply(t, tr, tree.NewUpdate().
		Add(id(1), testutil.Parent(node.RoleWindow, 5, 6)).
		Add(id(6), testutil.Leaf(node.RoleButton, "new")))

	var kinds []tree.ChangeKind
	for _, c := range batch.Changes() {
		kinds = append(kinds, c.Kind())
	}
	want := []tree.ChangeKind{
		tree.ChangeNodeRemoved, tree.ChangeNodeRemoved, tree.ChangeNodeRemoved,
		tree.ChangeNodeAdded,
		tree.ChangeNodeUpdated,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("change kinds mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, testutil.IDs(2, 3, 4, 6, 1), testutil.ChangeIDs(batch))
	assert.Equal(t, 3, tr.Len())
}

func TestApply_ReparentWithinBatch(t *testing.T) {
	tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	// Move 3 under 2 in one update; both parents must be re-sent.
	batch := testutil.MustApply(t, tr, tree.NewUpdate().
		Add(id(1), testutil.Parent(node.RoleWindow, 2)).
		Add(id(2), node.NewBuilder(node.RoleGroup).PushChild(id(3)).Build(nil)))

	assert.Empty(t, batch.Removed())
	assert.Empty(t, batch.Added())
	assert.Len(t, batch.Updated(), 2)

	p, ok := tr.Parent(id(3))
	require.True(t, ok)
	assert.Equal(t, id(2), p)
	assert.Equal(t, 2, tr.Depth(id(3)))
}

func TestApply_RootChange(t *testing.T) {
	tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())

	batch := testutil.MustApply(t, tr, tree.NewUpdate().
		Add(id(10), testutil.Parent(node.RoleWindow, 2)).
		SetTree(tree.Info{Root: id(10), RootScroller: id(2)}))

	tc, ok := batch.Tree()
	require.True(t, ok)
	assert.Equal(t, tree.TreeChanged{
		OldRoot: id(1), NewRoot: id(10),
		NewRootScroller: id(2),
	}, tc)

	assert.Equal(t, testutil.IDs(1, 3, 10), testutil.ChangeIDs(batch))
	rs, ok := tr.RootScroller()
	require.True(t, ok)
	assert.Equal(t, id(2), rs)
}

func TestApply_FocusInheritedAndCleared(t *testing.T) {
	initial := testutil.ThreeNodeUpdate().SetFocus(id(2))
	tr, batch := testutil.SetupTree(t, initial)

	fc, ok := batch.Focus()
	require.True(t, ok)
	assert.Equal(t, id(2), fc.New)

	// Focus is inherited; pruning the focused node is rejected.
	_, err := tr.Apply(tree.NewUpdate().Add(id(1), testutil.Parent(node.RoleWindow, 3)))
	require.ErrorIs(t, err, tree.ErrDanglingFocus)

	batch = testutil.MustApply(t, tr, tree.NewUpdate().ClearFocus())
	fc, ok = batch.Focus()
	require.True(t, ok)
	assert.Equal(t, id(2), fc.Old)
	assert.True(t, fc.New.IsZero())

	_, ok = tr.Focus()
	assert.False(t, ok)
}

func TestApply_StrictRelations(t *testing.T) {
	labelled := func(ref uint64) *tree.Update {
		return tree.NewUpdate().Add(id(2),
			node.NewBuilder(node.RoleButton).SetLabelledBy(testutil.IDs(3, ref)).Build(nil))
	}

	t.Run("lenient by default", func(t *testing.T) {
		tr, _ := testutil.SetupTree(t, testutil.ThreeNodeUpdate())
		testutil.MustApply(t, tr, labelled(42))
		assert.Equal(t, testutil.IDs(3), tr.Relations(id(2), node.PropLabelledBy))
	})

	t.Run("strict rejects", func(t *testing.T) {
		tr, _, err := tree.New(testutil.ThreeNodeUpdate(), tree.StrictOptions())
		require.NoError(t, err)

		_, err = tr.Apply(labelled(42))
		require.ErrorIs(t, err, tree.ErrDanglingReference)

		var verr *tree.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, id(42), verr.ID)
		assert.Equal(t, id(2), verr.Parent)
		assert.Equal(t, node.PropLabelledBy, verr.Property)
		assert.Contains(t, verr.Error(), "labelled_by")

		testutil.MustApply(t, tr, labelled(1))
	})
}

func TestApply_Limits(t *testing.T) {
	t.Run("max nodes", func(t *testing.T) {
		_, _, err := tree.New(testutil.ThreeNodeUpdate(), tree.Options{MaxNodes: 2})
		require.ErrorIs(t, err, tree.ErrLimitExceeded)

		var verr *tree.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "MaxNodes", verr.Limit)
		assert.Equal(t, 2, verr.Maximum)
	})

	t.Run("max depth", func(t *testing.T) {
		chain := tree.NewUpdate().
			Add(id(1), testutil.Parent(node.RoleWindow, 2)).
			Add(id(2), testutil.Parent(node.RoleGroup, 3)).
			Add(id(3), testutil.Leaf(node.RoleButton, "deep")).
			SetRoot(id(1))

		_, _, err := tree.New(chain, tree.Options{MaxDepth: 2})
		require.ErrorIs(t, err, tree.ErrLimitExceeded)

		_, _, err = tree.New(chain, tree.Options{MaxDepth: 3})
		require.NoError(t, err)
	})
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "dangling_focus", tree.KindDanglingFocus.String())
	assert.Equal(t, "multi_parent", tree.KindMultiParent.String())
	assert.Equal(t, "ErrorKind(0)", tree.ErrorKind(0).String())
}
