package tree

import (
	"slices"

	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/types"
)

// ChangeKind discriminates Change values.
type ChangeKind int

const (
	ChangeNodeRemoved ChangeKind = iota
	ChangeNodeAdded
	ChangeNodeUpdated
	ChangeFocus
	ChangeTree
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeNodeRemoved:
		return "node_removed"
	case ChangeNodeAdded:
		return "node_added"
	case ChangeNodeUpdated:
		return "node_updated"
	case ChangeFocus:
		return "focus_changed"
	case ChangeTree:
		return "tree_changed"
	default:
		return "unknown"
	}
}

// Change is one entry of a ChangeBatch. The concrete types are NodeRemoved,
// NodeAdded, NodeUpdated, FocusChanged and TreeChanged.
type Change interface {
	Kind() ChangeKind
	isChange()
}

// NodeRemoved reports a node that is no longer in the tree.
type NodeRemoved struct {
	ID   types.NodeID
	Node *node.Node // last version of the node
}

// NodeAdded reports a node that entered the tree.
type NodeAdded struct {
	ID   types.NodeID
	Node *node.Node
}

// NodeUpdated reports a node whose properties changed.
type NodeUpdated struct {
	ID  types.NodeID
	Old *node.Node
	New *node.Node
}

// FocusChanged reports a focus move. A zero id means no focus.
type FocusChanged struct {
	Old types.NodeID
	New types.NodeID
}

// TreeChanged reports a new root or root scroller. It is never emitted by
// a tree's first update.
type TreeChanged struct {
	OldRoot         types.NodeID
	NewRoot         types.NodeID
	OldRootScroller types.NodeID
	NewRootScroller types.NodeID
}

func (NodeRemoved) Kind() ChangeKind  { return ChangeNodeRemoved }
func (NodeAdded) Kind() ChangeKind    { return ChangeNodeAdded }
func (NodeUpdated) Kind() ChangeKind  { return ChangeNodeUpdated }
func (FocusChanged) Kind() ChangeKind { return ChangeFocus }
func (TreeChanged) Kind() ChangeKind  { return ChangeTree }

func (NodeRemoved) isChange()  {}
func (NodeAdded) isChange()    {}
func (NodeUpdated) isChange()  {}
func (FocusChanged) isChange() {}
func (TreeChanged) isChange()  {}

// ChangedProperties lists the properties that differ between Old and New.
func (u NodeUpdated) ChangedProperties() []node.PropertyID {
	return u.Old.DiffProperties(u.New)
}

// ChangeBatch is the ordered result of one Apply. Nodes referenced by a
// batch are immutable, so a batch stays valid after later updates.
type ChangeBatch struct {
	changes []Change
}

// NewChangeBatch builds a batch from changes, for tests and for decoders
// that rebuild batches received from elsewhere.
func NewChangeBatch(changes ...Change) *ChangeBatch {
	return &ChangeBatch{changes: changes}
}

// Changes returns a copy of the changes in order.
func (b *ChangeBatch) Changes() []Change {
	if b == nil {
		return nil
	}
	return slices.Clone(b.changes)
}

// Len returns the number of changes.
func (b *ChangeBatch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.changes)
}

// IsEmpty reports whether the batch holds no changes.
func (b *ChangeBatch) IsEmpty() bool { return b.Len() == 0 }

// Added returns the NodeAdded changes in order.
func (b *ChangeBatch) Added() []NodeAdded { return filter[NodeAdded](b) }

// Removed returns the NodeRemoved changes in order.
func (b *ChangeBatch) Removed() []NodeRemoved { return filter[NodeRemoved](b) }

// Updated returns the NodeUpdated changes in order.
func (b *ChangeBatch) Updated() []NodeUpdated { return filter[NodeUpdated](b) }

// Focus returns the focus change, if any.
func (b *ChangeBatch) Focus() (FocusChanged, bool) {
	fc := filter[FocusChanged](b)
	if len(fc) == 0 {
		return FocusChanged{}, false
	}
	return fc[0], true
}

// Tree returns the root change, if any.
func (b *ChangeBatch) Tree() (TreeChanged, bool) {
	tc := filter[TreeChanged](b)
	if len(tc) == 0 {
		return TreeChanged{}, false
	}
	return tc[0], true
}

// CountByKind tallies the changes by kind.
func (b *ChangeBatch) CountByKind() map[ChangeKind]int {
	out := make(map[ChangeKind]int)
	for _, c := range b.Changes() {
		out[c.Kind()]++
	}
	return out
}

func filter[T Change](b *ChangeBatch) []T {
	if b == nil {
		return nil
	}
	var out []T
	for _, c := range b.changes {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
