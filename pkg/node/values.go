package node

import (
	"math/bits"

	"github.com/joshuapare/axtree/pkg/types"
)

// TextPosition is a caret position inside a text run.
type TextPosition struct {
	Node           types.NodeID
	CharacterIndex int
}

// TextSelection is a selection between two text positions. A collapsed
// selection (caret) has Anchor == Focus.
type TextSelection struct {
	Anchor TextPosition
	Focus  TextPosition
}

// IsCollapsed reports whether the selection is a caret.
func (s TextSelection) IsCollapsed() bool { return s.Anchor == s.Focus }

// CustomAction is an application-defined action exposed on a node.
type CustomAction struct {
	ID          int32
	Description string
}

// ActionSet is a set of Actions stored as a bitset.
type ActionSet uint32

// NewActionSet returns the set containing actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return a.IsValid() && s&(1<<a) != 0
}

// With returns the set plus a. Invalid actions are ignored.
func (s ActionSet) With(a Action) ActionSet {
	if !a.IsValid() {
		return s
	}
	return s | 1<<a
}

// Without returns the set minus a.
func (s ActionSet) Without(a Action) ActionSet {
	if !a.IsValid() {
		return s
	}
	return s &^ (1 << a)
}

// Len returns the number of actions in the set.
func (s ActionSet) Len() int { return bits.OnesCount32(uint32(s)) }

// Actions returns the members in enum order.
func (s ActionSet) Actions() []Action {
	out := make([]Action, 0, s.Len())
	for a := Action(0); int(a) < len(actionNames); a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// flagSet stores tri-state flags as two bitsets: which flags are set, and
// the value of each set flag.
type flagSet struct {
	set, val uint64
}

func flagBit(id PropertyID) uint64 { return 1 << (id - 1) }

func (f flagSet) get(id PropertyID) (value, ok bool) {
	bit := flagBit(id)
	if f.set&bit == 0 {
		return false, false
	}
	return f.val&bit != 0, true
}

func (f *flagSet) put(id PropertyID, v bool) {
	bit := flagBit(id)
	f.set |= bit
	if v {
		f.val |= bit
	} else {
		f.val &^= bit
	}
}

func (f *flagSet) clear(id PropertyID) {
	bit := flagBit(id)
	f.set &^= bit
	f.val &^= bit
}
