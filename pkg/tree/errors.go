package tree

import (
	"fmt"

	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/types"
)

// ErrorKind names the invariant an update violated.
type ErrorKind int

const (
	KindMissingRoot       ErrorKind = iota + 1 // first update without a root declaration
	KindDanglingReference                      // reference to a node absent after the update
	KindCycle                                  // node reachable from itself
	KindMultiParent                            // node listed as a child twice
	KindDanglingFocus                          // focus not in the resulting tree
	KindInvalidIdentifier                      // zero id or nil node in the update
	KindLimitExceeded                          // Options limit exceeded
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingRoot:
		return "missing_root"
	case KindDanglingReference:
		return "dangling_reference"
	case KindCycle:
		return "cycle"
	case KindMultiParent:
		return "multi_parent"
	case KindDanglingFocus:
		return "dangling_focus"
	case KindInvalidIdentifier:
		return "invalid_identifier"
	case KindLimitExceeded:
		return "limit_exceeded"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ValidationError reports an update that would break a tree invariant.
// The tree is unchanged when Apply returns one.
type ValidationError struct {
	Kind ErrorKind
	ID   types.NodeID // offending node, zero when not applicable

	// Parent is the node holding the offending reference, when known.
	Parent types.NodeID
	// Property is the relation holding a dangling non-child reference.
	Property node.PropertyID

	// Limit, Current and Maximum describe a KindLimitExceeded failure.
	Limit   string
	Current int
	Maximum int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingRoot:
		return "tree update: first update must declare a root"
	case KindDanglingReference:
		switch {
		case e.Property != 0:
			return fmt.Sprintf("tree update: node %s references missing node %s via %s", e.Parent, e.ID, e.Property)
		case !e.Parent.IsZero():
			return fmt.Sprintf("tree update: node %s lists missing child %s", e.Parent, e.ID)
		default:
			return fmt.Sprintf("tree update: node %s does not exist", e.ID)
		}
	case KindCycle:
		return fmt.Sprintf("tree update: node %s is its own ancestor (via %s)", e.ID, e.Parent)
	case KindMultiParent:
		return fmt.Sprintf("tree update: node %s has more than one parent (again via %s)", e.ID, e.Parent)
	case KindDanglingFocus:
		return fmt.Sprintf("tree update: focus %s is not in the tree", e.ID)
	case KindInvalidIdentifier:
		if !e.ID.IsZero() {
			return fmt.Sprintf("tree update: node %s is nil", e.ID)
		}
		return "tree update: zero node id"
	case KindLimitExceeded:
		return fmt.Sprintf("tree update: %s is %d (max %d)", e.Limit, e.Current, e.Maximum)
	default:
		return fmt.Sprintf("tree update: %s", e.Kind)
	}
}

// Is matches sentinels by kind, so errors.Is(err, tree.ErrCycle) holds for
// every cycle regardless of the node involved.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrMissingRoot       = &ValidationError{Kind: KindMissingRoot}
	ErrDanglingReference = &ValidationError{Kind: KindDanglingReference}
	ErrCycle             = &ValidationError{Kind: KindCycle}
	ErrMultiParent       = &ValidationError{Kind: KindMultiParent}
	ErrDanglingFocus     = &ValidationError{Kind: KindDanglingFocus}
	ErrInvalidIdentifier = &ValidationError{Kind: KindInvalidIdentifier}
	ErrLimitExceeded     = &ValidationError{Kind: KindLimitExceeded}
)
