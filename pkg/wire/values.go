package wire

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/joshuapare/axtree/pkg/geom"
	"github.com/joshuapare/axtree/pkg/node"
	"github.com/joshuapare/axtree/pkg/types"
)

// encodeValue maps a property value, as returned by node.Node.Properties,
// onto plain MessagePack types.
func encodeValue(prop node.PropertyID, v any) any {
	switch prop.Kind() {
	case node.KindNodeIDList:
		ids := v.([]types.NodeID)
		out := make([][]byte, len(ids))
		for i, id := range ids {
			out[i] = idBytes(id)
		}
		return out
	case node.KindNodeID:
		return idBytes(v.(types.NodeID))
	case node.KindEnum:
		return v.(fmt.Stringer).String()
	case node.KindAffine:
		c := v.(geom.Affine).Coeffs()
		return c[:]
	case node.KindRect:
		r := v.(geom.Rect)
		return []float64{r.X0, r.Y0, r.X1, r.Y1}
	case node.KindTextSelection:
		s := v.(node.TextSelection)
		return wireSelection{
			AnchorNode:  idBytes(s.Anchor.Node),
			AnchorIndex: s.Anchor.CharacterIndex,
			FocusNode:   idBytes(s.Focus.Node),
			FocusIndex:  s.Focus.CharacterIndex,
		}
	case node.KindCustomActions:
		actions := v.([]node.CustomAction)
		out := make([]wireCustomAction, len(actions))
		for i, a := range actions {
			out[i] = wireCustomAction{ID: a.ID, Description: a.Description}
		}
		return out
	default:
		// bool, string, float64, int, uint32, []uint8, []float32
		return v
	}
}

// decodeValue is the inverse of encodeValue. The result has the Go type
// node.Builder.Set expects for prop.
func decodeValue(prop node.PropertyID, raw msgpack.RawMessage) (any, error) {
	switch prop.Kind() {
	case node.KindFlag:
		return unmarshal[bool](raw)
	case node.KindNodeIDList:
		list, err := unmarshal[[][]byte](raw)
		if err != nil {
			return nil, err
		}
		ids := make([]types.NodeID, len(list))
		for i, b := range list {
			if ids[i], err = types.NodeIDFromBytes(b); err != nil {
				return nil, err
			}
		}
		return ids, nil
	case node.KindNodeID:
		b, err := unmarshal[[]byte](raw)
		if err != nil {
			return nil, err
		}
		return types.NodeIDFromBytes(b)
	case node.KindString:
		return unmarshal[string](raw)
	case node.KindFloat:
		return unmarshal[float64](raw)
	case node.KindInt:
		return unmarshal[int](raw)
	case node.KindColor:
		return unmarshal[uint32](raw)
	case node.KindEnum:
		name, err := unmarshal[string](raw)
		if err != nil {
			return nil, err
		}
		return node.ParseEnumValue(prop, name)
	case node.KindLengths:
		return unmarshal[[]uint8](raw)
	case node.KindCoords:
		return unmarshal[[]float32](raw)
	case node.KindAffine:
		c, err := unmarshal[[]float64](raw)
		if err != nil {
			return nil, err
		}
		return affineFrom(c)
	case node.KindRect:
		c, err := unmarshal[[]float64](raw)
		if err != nil {
			return nil, err
		}
		return rectFrom(c)
	case node.KindTextSelection:
		s, err := unmarshal[wireSelection](raw)
		if err != nil {
			return nil, err
		}
		anchor, err := types.NodeIDFromBytes(s.AnchorNode)
		if err != nil {
			return nil, err
		}
		focus, err := types.NodeIDFromBytes(s.FocusNode)
		if err != nil {
			return nil, err
		}
		return node.TextSelection{
			Anchor: node.TextPosition{Node: anchor, CharacterIndex: s.AnchorIndex},
			Focus:  node.TextPosition{Node: focus, CharacterIndex: s.FocusIndex},
		}, nil
	case node.KindCustomActions:
		list, err := unmarshal[[]wireCustomAction](raw)
		if err != nil {
			return nil, err
		}
		out := make([]node.CustomAction, len(list))
		for i, a := range list {
			out[i] = node.CustomAction{ID: a.ID, Description: a.Description}
		}
		return out, nil
	}
	return nil, types.Errorf(types.ErrKindNotFound, "unknown property %s", prop)
}

func unmarshal[T any](raw msgpack.RawMessage) (T, error) {
	var v T
	if err := msgpack.Unmarshal(raw, &v); err != nil {
		return v, types.Wrap(types.ErrKindFormat, err, fmt.Sprintf("expected %T", v))
	}
	return v, nil
}

func affineFrom(c []float64) (geom.Affine, error) {
	if len(c) != 6 {
		return geom.Identity, types.Errorf(types.ErrKindFormat, "affine needs 6 coefficients, got %d", len(c))
	}
	return geom.NewAffine(c[0], c[1], c[2], c[3], c[4], c[5]), nil
}

func rectFrom(c []float64) (geom.Rect, error) {
	if len(c) != 4 {
		return geom.ZeroRect, types.Errorf(types.ErrKindFormat, "rect needs 4 coordinates, got %d", len(c))
	}
	return geom.NewRect(c[0], c[1], c[2], c[3]), nil
}
