// Package adapter connects a tree.Tree to a platform accessibility API.
//
// An Adapter owns one tree for one UI surface. The application pushes
// updates into it; the platform side reads the tree, receives change
// batches through an EventSink and sends action requests back through an
// action.Handler. All three are held by the Adapter itself, so every
// callback gets the instance it belongs to without any global lookup.
//
// # Activation
//
// Building the initial tree can be expensive, and is wasted if no
// assistive technology ever connects. New therefore takes a Source that
// is called at most once, the first time the tree is needed: on Activate,
// on Read, or on the first Update. Until then UpdateIfActive does nothing
// and never calls its factory.
//
// # Locking
//
// The tree sits behind a sync.RWMutex. Update holds the write lock for
// the whole validate-then-commit sequence. Read and DoAction hold the read
// lock. Events are not delivered under either lock: Update returns them as
// QueuedEvents, and the caller raises them once it has released any locks
// of its own.
//
//	events, err := a.Update(u)
//	if err != nil {
//		return err // tree still holds the last valid state
//	}
//	events.Raise()
package adapter
