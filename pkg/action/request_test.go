package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axtree/pkg/geom"
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/types"
)

func TestRequest_Validate(t *testing.T) {
	target := types.MustNodeID(7)
	sel := SetTextSelection{
		Anchor: node.TextPosition{Node: target, CharacterIndex: 0},
		Focus:  node.TextPosition{Node: target, CharacterIndex: 4},
	}

	tests := []struct {
		name    string
		action  node.Action
		data    Data
		wantErr error
	}{
		{"default action without data", node.ActionDefault, nil, nil},
		{"focus with stray data", node.ActionFocus, Value("x"), types.ErrTypeMismatch},
		{"custom action", node.ActionCustomAction, CustomAction(3), nil},
		{"custom action missing id", node.ActionCustomAction, nil, types.ErrTypeMismatch},
		{"replace text", node.ActionReplaceSelectedText, Value("hi"), nil},
		{"replace text with number", node.ActionReplaceSelectedText, NumericValue(1), types.ErrTypeMismatch},
		{"set string value", node.ActionSetValue, Value("abc"), nil},
		{"set numeric value", node.ActionSetValue, NumericValue(0.5), nil},
		{"set value missing", node.ActionSetValue, nil, types.ErrTypeMismatch},
		{"scroll into view", node.ActionScrollIntoView, nil, nil},
		{"scroll into view rect", node.ActionScrollIntoView, ScrollTargetRect(geom.NewRect(0, 0, 5, 5)), nil},
		{"scroll to point", node.ActionScrollToPoint, ScrollToPoint(geom.Pt(3, 4)), nil},
		{"scroll to point wrong payload", node.ActionScrollToPoint, SetScrollOffset(geom.Pt(3, 4)), types.ErrTypeMismatch},
		{"scroll offset", node.ActionSetScrollOffset, SetScrollOffset(geom.Pt(0, 100)), nil},
		{"text selection", node.ActionSetTextSelection, sel, nil},
		{"text selection missing", node.ActionSetTextSelection, nil, types.ErrTypeMismatch},
		{"unknown action", node.Action(200), nil, types.ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Request{Action: tt.action, Target: target, Data: tt.data}.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequest_ValidateZeroTarget(t *testing.T) {
	err := Request{Action: node.ActionFocus}.Validate()
	require.ErrorIs(t, err, types.ErrFormat)
}

func TestRequest_String(t *testing.T) {
	r := Request{Action: node.ActionSetValue, Target: types.MustNodeID(2), Data: Value("on")}
	assert.Contains(t, r.String(), `value("on")`)
	assert.Contains(t, r.String(), "2")

	r = Request{Action: node.ActionFocus, Target: types.MustNodeID(2)}
	assert.NotContains(t, r.String(), "with")
}

func TestHandlerFunc(t *testing.T) {
	var got []Request
	h := HandlerFunc(func(r Request) { got = append(got, r) })

	req := Request{Action: node.ActionCustomAction, Target: types.MustNodeID(1), Data: CustomAction(9)}
	h.DoAction(req)
	Discard.DoAction(req)

	require.Len(t, got, 1)
	assert.Equal(t, req, got[0])
}
