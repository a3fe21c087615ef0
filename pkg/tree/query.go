package tree

import (
	"github.com/joshuapare/axtree/pkg/geom"
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/types"
)

// -----------------------------------------------------------------------------
// Read accessors
// -----------------------------------------------------------------------------

// Root returns the root id, or the zero id before the first update.
func (t *Tree) Root() types.NodeID { return t.root }

// RootNode returns the root node, or nil before the first update.
func (t *Tree) RootNode() *node.Node { return t.nodes[t.root] }

// RootScroller returns the root scroller, if one is declared.
func (t *Tree) RootScroller() (types.NodeID, bool) {
	return t.rootScroller, !t.rootScroller.IsZero()
}

// Focus returns the focused node id, if any.
func (t *Tree) Focus() (types.NodeID, bool) {
	return t.focus, !t.focus.IsZero()
}

// Node looks up a node by id.
func (t *Tree) Node(id types.NodeID) (*node.Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Contains reports whether id is in the tree.
func (t *Tree) Contains(id types.NodeID) bool {
	_, ok := t.nodes[id]
	return ok
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Parent returns the parent of id. ok is false for the root and for ids
// not in the tree.
func (t *Tree) Parent(id types.NodeID) (types.NodeID, bool) {
	p, ok := t.parents[id]
	return p, ok
}

// Children returns the child ids of id in order.
func (t *Tree) Children(id types.NodeID) []types.NodeID {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	return n.Children()
}

// IndexInParent returns the position of id in its parent's child list.
func (t *Tree) IndexInParent(id types.NodeID) (int, bool) {
	parent, ok := t.parents[id]
	if !ok {
		return 0, false
	}
	for i, c := range t.nodes[parent].Children() {
		if c == id {
			return i, true
		}
	}
	return 0, false
}

// Ancestors returns the ancestors of id, nearest first, ending with the
// root.
func (t *Tree) Ancestors(id types.NodeID) []types.NodeID {
	var out []types.NodeID
	for p, ok := t.parents[id]; ok; p, ok = t.parents[p] {
		out = append(out, p)
	}
	return out
}

// Depth returns the number of edges between id and the root.
func (t *Tree) Depth(id types.NodeID) int { return len(t.Ancestors(id)) }

// Walk visits every node in pre-order. It stops when fn returns false.
func (t *Tree) Walk(fn func(id types.NodeID, n *node.Node) bool) {
	t.walkPreOrder(func(id types.NodeID) bool { return fn(id, t.nodes[id]) })
}

func (t *Tree) walkPreOrder(fn func(types.NodeID) bool) {
	if t.root.IsZero() {
		return
	}
	stack := []types.NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(id) {
			return
		}
		children := t.nodes[id].Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Relations returns the ids held by relation property prop on node id,
// omitting any that are not in the tree.
func (t *Tree) Relations(id types.NodeID, prop node.PropertyID) []types.NodeID {
	n, ok := t.nodes[id]
	if !ok || !prop.IsRelation() {
		return nil
	}
	v, ok := n.Get(prop)
	if !ok {
		return nil
	}

	var ids []types.NodeID
	switch x := v.(type) {
	case types.NodeID:
		ids = []types.NodeID{x}
	case []types.NodeID:
		ids = x
	}

	out := ids[:0]
	for _, ref := range ids {
		if t.Contains(ref) {
			out = append(out, ref)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// -----------------------------------------------------------------------------
// Filtering
// -----------------------------------------------------------------------------

// FilterResult tells FilteredChildren and HitTest how to treat a node.
type FilterResult int

const (
	Include        FilterResult = iota // expose the node
	ExcludeNode                        // skip the node but expose its children
	ExcludeSubtree                     // skip the node and its descendants
)

// Filter classifies a node for platform exposure.
type Filter func(id types.NodeID, n *node.Node) FilterResult

// CommonFilter returns the filter most platforms want: the focused node is
// always included, hidden subtrees are excluded, and presentational
// containers are flattened into their parents.
func (t *Tree) CommonFilter() Filter {
	focus := t.focus
	return func(id types.NodeID, n *node.Node) FilterResult {
		if id == focus {
			return Include
		}
		if n.IsHidden() {
			return ExcludeSubtree
		}
		switch n.Role() {
		case node.RolePresentation:
			return ExcludeNode
		case node.RoleGenericContainer:
			if _, named := n.Name(); !named {
				return ExcludeNode
			}
		}
		return Include
	}
}

// FilteredChildren returns the children of id as seen through filter:
// ExcludeNode children are replaced by their own filtered children and
// ExcludeSubtree children are dropped. A nil filter means CommonFilter.
func (t *Tree) FilteredChildren(id types.NodeID, filter Filter) []types.NodeID {
	if filter == nil {
		filter = t.CommonFilter()
	}
	var out []types.NodeID
	for _, c := range t.Children(id) {
		switch filter(c, t.nodes[c]) {
		case Include:
			out = append(out, c)
		case ExcludeNode:
			out = append(out, t.FilteredChildren(c, filter)...)
		}
	}
	return out
}

// FilteredParent returns the nearest ancestor of id that filter includes.
func (t *Tree) FilteredParent(id types.NodeID, filter Filter) (types.NodeID, bool) {
	if filter == nil {
		filter = t.CommonFilter()
	}
	for _, a := range t.Ancestors(id) {
		if filter(a, t.nodes[a]) == Include {
			return a, true
		}
	}
	return types.InvalidNodeID, false
}

// -----------------------------------------------------------------------------
// Geometry
// -----------------------------------------------------------------------------

// TransformToRoot returns the transform from id's coordinate space to the
// root's parent space: the product of every transform from the root down
// to id, id's own transform included.
func (t *Tree) TransformToRoot(id types.NodeID) geom.Affine {
	result := geom.Identity
	for cur, ok := id, t.Contains(id); ok; cur, ok = t.parents[cur] {
		if tr, has := t.nodes[cur].Transform(); has {
			result = tr.Mul(result)
		}
	}
	return result
}

// BoundingBox returns id's bounds mapped into root space.
func (t *Tree) BoundingBox(id types.NodeID) (geom.Rect, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return geom.ZeroRect, false
	}
	bounds, ok := n.Bounds()
	if !ok {
		return geom.ZeroRect, false
	}
	return t.TransformToRoot(id).TransformRectBBox(bounds), true
}

// HitTest returns the deepest node whose bounds contain p, given in root
// space. Later siblings are tested first since they paint on top. Nodes
// with clips_children set hide any part of a descendant outside their own
// bounds. A nil filter means CommonFilter.
func (t *Tree) HitTest(p geom.Point, filter Filter) (types.NodeID, bool) {
	if t.root.IsZero() {
		return types.InvalidNodeID, false
	}
	if filter == nil {
		filter = t.CommonFilter()
	}
	return t.hitTest(t.root, p, filter)
}

func (t *Tree) hitTest(id types.NodeID, p geom.Point, filter Filter) (types.NodeID, bool) {
	n := t.nodes[id]
	if filter(id, n) == ExcludeSubtree {
		return types.InvalidNodeID, false
	}

	local := p
	if tr, ok := n.Transform(); ok {
		inv := tr.Inverse()
		if !inv.IsFinite() {
			return types.InvalidNodeID, false
		}
		local = inv.Apply(p)
	}

	bounds, hasBounds := n.Bounds()
	if n.IsClipsChildren() && hasBounds && !bounds.Contains(local) {
		return types.InvalidNodeID, false
	}

	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit, ok := t.hitTest(children[i], local, filter); ok {
			return hit, true
		}
	}

	if hasBounds && bounds.Contains(local) && filter(id, n) == Include {
		return id, true
	}
	return types.InvalidNodeID, false
}
