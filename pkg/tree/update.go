package tree

import (
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/types"
)

// NodePair is one (id, node) entry of an Update.
type NodePair struct {
	ID   types.NodeID
	Node *node.Node
}

// Info declares the tree-level properties: the root and the optional root
// scroller (zero for none).
type Info struct {
	Root         types.NodeID
	RootScroller types.NodeID
}

// Update is a single-use batch of node changes. The tree never retains an
// Update after Apply returns.
type Update struct {
	// Nodes are applied in order; a later pair for the same id replaces an
	// earlier one.
	Nodes []NodePair

	// Tree declares the root. Required on a tree's first update, optional
	// afterwards.
	Tree *Info

	// Focus is nil to keep the current focus. A pointer to the zero id
	// clears the focus; any other id moves it.
	Focus *types.NodeID
}

// NewUpdate returns an empty update.
func NewUpdate() *Update { return &Update{} }

// Add appends an (id, node) pair.
func (u *Update) Add(id types.NodeID, n *node.Node) *Update {
	u.Nodes = append(u.Nodes, NodePair{ID: id, Node: n})
	return u
}

// SetRoot declares root as the tree root with no root scroller.
func (u *Update) SetRoot(root types.NodeID) *Update {
	u.Tree = &Info{Root: root}
	return u
}

// SetTree declares the tree-level properties.
func (u *Update) SetTree(info Info) *Update {
	u.Tree = &info
	return u
}

// SetFocus moves the focus to id.
func (u *Update) SetFocus(id types.NodeID) *Update {
	u.Focus = &id
	return u
}

// ClearFocus removes the focus.
func (u *Update) ClearFocus() *Update {
	var none types.NodeID
	u.Focus = &none
	return u
}

// Len returns the number of pairs.
func (u *Update) Len() int { return len(u.Nodes) }
