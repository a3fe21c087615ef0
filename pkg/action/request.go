package action

import (
	"fmt"

	"github.com/joshuapare/axtree/pkg/geom"
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/types"
)

// Data is an optional action payload. The set of implementations is
// closed.
type Data interface {
	isData()
	String() string
}

type (
	// CustomAction selects one of the node's CustomActions by id.
	CustomAction int32
	// Value is text for ActionReplaceSelectedText or ActionSetValue.
	Value string
	// NumericValue is a number for ActionSetValue.
	NumericValue float64
	// ScrollTargetRect narrows ActionScrollIntoView to part of the target,
	// in the target's coordinate space.
	ScrollTargetRect geom.Rect
	// ScrollToPoint is the point, in the target's parent space, that the
	// target's origin should be scrolled to.
	ScrollToPoint geom.Point
	// SetScrollOffset is the new scroll position of the target.
	SetScrollOffset geom.Point
	// SetTextSelection is the new selection for ActionSetTextSelection.
	SetTextSelection node.TextSelection
)

func (CustomAction) isData()     {}
func (Value) isData()            {}
func (NumericValue) isData()     {}
func (ScrollTargetRect) isData() {}
func (ScrollToPoint) isData()    {}
func (SetScrollOffset) isData()  {}
func (SetTextSelection) isData() {}

func (d CustomAction) String() string { return fmt.Sprintf("custom_action(%d)", int32(d)) }
func (d Value) String() string        { return fmt.Sprintf("value(%q)", string(d)) }
func (d NumericValue) String() string { return fmt.Sprintf("numeric_value(%g)", float64(d)) }
func (d ScrollTargetRect) String() string {
	return fmt.Sprintf("scroll_target_rect(%g,%g,%g,%g)", d.X0, d.Y0, d.X1, d.Y1)
}
func (d ScrollToPoint) String() string   { return fmt.Sprintf("scroll_to_point(%g,%g)", d.X, d.Y) }
func (d SetScrollOffset) String() string { return fmt.Sprintf("set_scroll_offset(%g,%g)", d.X, d.Y) }
func (d SetTextSelection) String() string {
	return fmt.Sprintf("set_text_selection(%s:%d..%s:%d)",
		d.Anchor.Node, d.Anchor.CharacterIndex, d.Focus.Node, d.Focus.CharacterIndex)
}

// Request asks the application to perform Action on Target.
type Request struct {
	Action node.Action
	Target types.NodeID
	Data   Data // nil when the action carries no payload
}

func (r Request) String() string {
	if r.Data == nil {
		return fmt.Sprintf("%s on %s", r.Action, r.Target)
	}
	return fmt.Sprintf("%s on %s with %s", r.Action, r.Target, r.Data)
}

// Validate checks the request's shape without looking at any tree:
//
//	ActionCustomAction         requires CustomAction
//	ActionReplaceSelectedText  requires Value
//	ActionSetValue             requires Value or NumericValue
//	ActionScrollIntoView       accepts an optional ScrollTargetRect
//	ActionScrollToPoint        requires ScrollToPoint
//	ActionSetScrollOffset      requires SetScrollOffset
//	ActionSetTextSelection     requires SetTextSelection
//
// Every other action must carry no payload.
func (r Request) Validate() error {
	if !r.Action.IsValid() {
		return types.Errorf(types.ErrKindFormat, "unknown action %d", uint8(r.Action))
	}
	if r.Target.IsZero() {
		return types.Errorf(types.ErrKindFormat, "%s: zero target", r.Action)
	}

	ok := false
	switch r.Action {
	case node.ActionCustomAction:
		_, ok = r.Data.(CustomAction)
	case node.ActionReplaceSelectedText:
		_, ok = r.Data.(Value)
	case node.ActionSetValue:
		switch r.Data.(type) {
		case Value, NumericValue:
			ok = true
		}
	case node.ActionScrollIntoView:
		switch r.Data.(type) {
		case nil, ScrollTargetRect:
			ok = true
		}
	case node.ActionScrollToPoint:
		_, ok = r.Data.(ScrollToPoint)
	case node.ActionSetScrollOffset:
		_, ok = r.Data.(SetScrollOffset)
	case node.ActionSetTextSelection:
		_, ok = r.Data.(SetTextSelection)
	default:
		ok = r.Data == nil
	}
	if !ok {
		if r.Data == nil {
			return types.Errorf(types.ErrKindType, "%s: missing payload", r.Action)
		}
		return types.Errorf(types.ErrKindType, "%s: unexpected payload %s", r.Action, r.Data)
	}
	return nil
}
