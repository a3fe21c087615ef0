package tree

import (
	"github.com/joshuapare/axtree/pkg/types"
)

// diff computes the change batch between the current state and next.
// Removals come first (old pre-order), then additions and updates (new
// pre-order), then focus and root changes.
func (t *Tree) diff(next *prospective) *ChangeBatch {
	var changes []Change

	// 1. Removed: old nodes the walk did not reach.
	removed := 0
	for id := range t.nodes {
		if _, ok := next.nodes[id]; !ok {
			removed++
		}
	}
	if removed > 0 {
		t.walkPreOrder(func(id types.NodeID) bool {
			if _, ok := next.nodes[id]; !ok {
				changes = append(changes, NodeRemoved{ID: id, Node: t.nodes[id]})
			}
			return true
		})
	}

	// 2. Added: reached nodes the old tree did not have.
	for _, id := range next.order {
		if _, ok := t.nodes[id]; !ok {
			changes = append(changes, NodeAdded{ID: id, Node: next.nodes[id]})
		}
	}

	// 3. Updated: only nodes carried by the update can differ.
	if len(next.overlay) > 0 {
		for _, id := range next.order {
			fresh, sent := next.overlay[id]
			if !sent {
				continue
			}
			old, existed := t.nodes[id]
			if existed && old != fresh && !old.Equal(fresh) {
				changes = append(changes, NodeUpdated{ID: id, Old: old, New: fresh})
			}
		}
	}

	// 4. Focus.
	if next.focus != t.focus {
		changes = append(changes, FocusChanged{Old: t.focus, New: next.focus})
	}

	// 5. Root or root scroller, except on the first update.
	if t.IsInitialized() && (next.root != t.root || next.rootScroller != t.rootScroller) {
		changes = append(changes, TreeChanged{
			OldRoot:         t.root,
			NewRoot:         next.root,
			OldRootScroller: t.rootScroller,
			NewRootScroller: next.rootScroller,
		})
	}

	return &ChangeBatch{changes: changes}
}
