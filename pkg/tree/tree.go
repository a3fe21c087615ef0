package tree

import (
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/types"
)

// Tree is the authoritative accessibility tree for one UI surface.
type Tree struct {
	opts Options

	nodes   map[types.NodeID]*node.Node
	parents map[types.NodeID]types.NodeID

	root         types.NodeID
	rootScroller types.NodeID // zero when none
	focus        types.NodeID // zero when none
}

// Empty returns a tree with no nodes. Its first update must declare a
// root.
func Empty(opts Options) *Tree {
	return &Tree{
		opts:    opts,
		nodes:   map[types.NodeID]*node.Node{},
		parents: map[types.NodeID]types.NodeID{},
	}
}

// New builds a tree from an initial full update. The batch lists every
// node as added, plus the initial focus when one is declared.
func New(initial *Update, opts Options) (*Tree, *ChangeBatch, error) {
	t := Empty(opts)
	batch, err := t.Apply(initial)
	if err != nil {
		return nil, nil, err
	}
	return t, batch, nil
}

// Options returns the validation options.
func (t *Tree) Options() Options { return t.opts }

// IsInitialized reports whether an update has been applied.
func (t *Tree) IsInitialized() bool { return !t.root.IsZero() }

// Apply validates u against the prospective tree and, if valid, commits it
// and returns the resulting changes. On error the tree is unchanged.
func (t *Tree) Apply(u *Update) (*ChangeBatch, error) {
	if u == nil {
		u = NewUpdate()
	}

	next, err := t.prepare(u)
	if err != nil {
		return nil, err
	}

	batch := t.diff(next)
	t.commit(next)
	return batch, nil
}

// prospective is a fully validated next state.
type prospective struct {
	nodes        map[types.NodeID]*node.Node
	parents      map[types.NodeID]types.NodeID
	order        []types.NodeID // pre-order from root
	root         types.NodeID
	rootScroller types.NodeID
	focus        types.NodeID
	overlay      map[types.NodeID]*node.Node
}

func (t *Tree) prepare(u *Update) (*prospective, error) {
	// 1. Identifier hygiene.
	for _, p := range u.Nodes {
		if p.ID.IsZero() {
			return nil, &ValidationError{Kind: KindInvalidIdentifier}
		}
		if p.Node == nil {
			return nil, &ValidationError{Kind: KindInvalidIdentifier, ID: p.ID}
		}
	}

	// 2. Root declaration.
	next := &prospective{
		root:         t.root,
		rootScroller: t.rootScroller,
		focus:        t.focus,
	}
	if u.Tree != nil {
		if u.Tree.Root.IsZero() {
			return nil, &ValidationError{Kind: KindInvalidIdentifier}
		}
		next.root = u.Tree.Root
		next.rootScroller = u.Tree.RootScroller
	}
	if next.root.IsZero() {
		return nil, &ValidationError{Kind: KindMissingRoot}
	}
	if u.Focus != nil {
		next.focus = *u.Focus
	}

	// 3. Overlay, last write wins.
	next.overlay = make(map[types.NodeID]*node.Node, len(u.Nodes))
	for _, p := range u.Nodes {
		next.overlay[p.ID] = p.Node
	}

	// 4. Reachability walk.
	if err := t.walk(next); err != nil {
		return nil, err
	}

	// 5. Focus and root scroller must survive pruning.
	if !next.focus.IsZero() {
		if _, ok := next.nodes[next.focus]; !ok {
			return nil, &ValidationError{Kind: KindDanglingFocus, ID: next.focus}
		}
	}
	if !next.rootScroller.IsZero() {
		if _, ok := next.nodes[next.rootScroller]; !ok {
			return nil, &ValidationError{Kind: KindDanglingReference, ID: next.rootScroller}
		}
	}

	// 6. Optional strict relation check.
	if t.opts.StrictRelations {
		if err := checkRelations(next); err != nil {
			return nil, err
		}
	}
	return next, nil
}

func (t *Tree) lookup(next *prospective, id types.NodeID) (*node.Node, bool) {
	if n, ok := next.overlay[id]; ok {
		return n, true
	}
	n, ok := t.nodes[id]
	return n, ok
}

type visitState uint8

const (
	unvisited visitState = iota
	onPath
	done
)

type frame struct {
	id       types.NodeID
	children []types.NodeID
	next     int
}

// walk performs the single depth-first pass from next.root, filling
// next.nodes, next.parents and next.order, and rejecting dangling
// children, cycles and multi-parenting.
func (t *Tree) walk(next *prospective) error {
	rootNode, ok := t.lookup(next, next.root)
	if !ok {
		return &ValidationError{Kind: KindDanglingReference, ID: next.root}
	}

	sizeHint := len(t.nodes) + len(next.overlay)
	next.nodes = make(map[types.NodeID]*node.Node, sizeHint)
	next.parents = make(map[types.NodeID]types.NodeID, sizeHint)
	next.order = make([]types.NodeID, 0, sizeHint)
	state := make(map[types.NodeID]visitState, sizeHint)

	enter := func(id types.NodeID, n *node.Node) error {
		if limit := t.opts.MaxNodes; limit > 0 && len(next.order) >= limit {
			return &ValidationError{Kind: KindLimitExceeded, ID: id, Limit: "MaxNodes", Current: len(next.order) + 1, Maximum: limit}
		}
		state[id] = onPath
		next.nodes[id] = n
		next.order = append(next.order, id)
		return nil
	}

	if err := enter(next.root, rootNode); err != nil {
		return err
	}
	stack := []frame{{id: next.root, children: rootNode.Children()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.children) {
			state[top.id] = done
			stack = stack[:len(stack)-1]
			continue
		}
		parent := top.id
		child := top.children[top.next]
		top.next++

		switch state[child] {
		case onPath:
			return &ValidationError{Kind: KindCycle, ID: child, Parent: parent}
		case done:
			return &ValidationError{Kind: KindMultiParent, ID: child, Parent: parent}
		}
		if child.IsZero() {
			return &ValidationError{Kind: KindInvalidIdentifier, Parent: parent}
		}

		n, ok := t.lookup(next, child)
		if !ok {
			return &ValidationError{Kind: KindDanglingReference, ID: child, Parent: parent}
		}
		if limit := t.opts.MaxDepth; limit > 0 && len(stack)+1 > limit {
			return &ValidationError{Kind: KindLimitExceeded, ID: child, Limit: "MaxDepth", Current: len(stack) + 1, Maximum: limit}
		}
		if err := enter(child, n); err != nil {
			return err
		}
		next.parents[child] = parent
		stack = append(stack, frame{id: child, children: n.Children()})
	}
	return nil
}

func checkRelations(next *prospective) error {
	var err error
	for _, id := range next.order {
		next.nodes[id].References(func(prop node.PropertyID, ref types.NodeID) bool {
			if _, ok := next.nodes[ref]; ok {
				return true
			}
			err = &ValidationError{Kind: KindDanglingReference, ID: ref, Parent: id, Property: prop}
			return false
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) commit(next *prospective) {
	t.nodes = next.nodes
	t.parents = next.parents
	t.root = next.root
	t.rootScroller = next.rootScroller
	t.focus = next.focus
}
