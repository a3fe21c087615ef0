// Package tree implements the accessibility tree consistency engine.
//
// A Tree owns the authoritative mapping from node id to node, the derived
// parent links, the root, the root scroller and the focus. It changes only
// through Apply, which takes an Update (a batch of (id, node) pairs plus
// optional root and focus declarations) and either integrates the whole
// batch or rejects it with a *ValidationError, leaving the tree untouched.
//
// # Update Application
//
// Apply overlays the update's pairs on the current nodes (later pairs for
// the same id win) and validates the result with one depth-first walk from
// the root:
//
//  1. The root must exist in the overlaid mapping.
//  2. Every child reference must resolve (DanglingReference).
//  3. No node may be its own ancestor (Cycle).
//  4. No node may be reached through two parent links (MultiParent).
//  5. Nodes the walk does not reach are pruned. This is how removal is
//     expressed: stop referencing a node from any child list.
//  6. The focus, whether declared by the update or inherited, must survive
//     pruning (DanglingFocus).
//
// Forward references within one update are valid because all pairs are
// merged before the walk. References into nodes that neither the tree nor
// the update carries are not.
//
// # Change Batches
//
// A successful Apply returns a ChangeBatch in a fixed order: NodeRemoved
// events in the old tree's pre-order, NodeAdded and then NodeUpdated
// events in the new tree's pre-order, then FocusChanged, then
// TreeChanged. Re-sending a node identical to the current one produces no
// NodeUpdated event.
//
// # Concurrency
//
// A Tree is NOT safe for concurrent use. Apply mutates in several steps;
// guard the tree with an exclusive lock (see the adapter package) when a
// reader and a writer run on different goroutines.
package tree
