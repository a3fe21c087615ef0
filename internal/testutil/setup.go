package testutil

import (
	"testing"

	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/tree"
	"github.com/joshuapare/axtree/pkg/types"
)

// ID is shorthand for types.MustNodeID.
func ID(u uint64) types.NodeID { return types.MustNodeID(u) }

// IDs converts a list of small integers into node ids.
func IDs(us ...uint64) []types.NodeID {
	out := make([]types.NodeID, len(us))
	for i, u := range us {
		out[i] = ID(u)
	}
	return out
}

// Leaf builds a childless node with a name.
func Leaf(role node.Role, name string) *node.Node {
	return node.NewBuilder(role).SetName(name).Build(nil)
}

// Parent builds a node with the given children and no other properties.
func Parent(role node.Role, children ...uint64) *node.Node {
	return node.NewBuilder(role).SetChildren(IDs(children...)).Build(nil)
}

// ThreeNodeUpdate returns the initial update used across the tests:
// root 1 (window) with children 2 and 3 (buttons named "B" and "C").
//
// Example:
//
//	tr, batch := testutil.SetupTree(t, testutil.ThreeNodeUpdate())
func ThreeNodeUpdate() *tree.Update {
	return tree.NewUpdate().
		Add(ID(1), Parent(node.RoleWindow, 2, 3)).
		Add(ID(2), Leaf(node.RoleButton, "B")).
		Add(ID(3), Leaf(node.RoleButton, "C")).
		SetRoot(ID(1))
}

// SetupTree builds a tree from initial with default options.
// Calls t.Fatal if the update is rejected.
func SetupTree(t *testing.T, initial *tree.Update) (*tree.Tree, *tree.ChangeBatch) {
	t.Helper()
	tr, batch, err := tree.New(initial, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to build tree: %v", err)
	}
	return tr, batch
}

// MustApply applies u and fails the test if it is rejected.
func MustApply(t *testing.T, tr *tree.Tree, u *tree.Update) *tree.ChangeBatch {
	t.Helper()
	batch, err := tr.Apply(u)
	if err != nil {
		t.Fatalf("Failed to apply update: %v", err)
	}
	return batch
}

// ChangeIDs lists the node id of every node-level change in a batch, for
// compact order assertions.
func ChangeIDs(batch *tree.ChangeBatch) []types.NodeID {
	var out []types.NodeID
	for _, c := range batch.Changes() {
		switch v := c.(type) {
		case tree.NodeRemoved:
			out = append(out, v.ID)
		case tree.NodeAdded:
			out = append(out, v.ID)
		case tree.NodeUpdated:
			out = append(out, v.ID)
		}
	}
	return out
}
