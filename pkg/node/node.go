package node

import (
	"iter"
	"math"
	"slices"
	"sort"

	"github.com/joshuapare/axtree/pkg/geom"
	"github.com/joshuapare/axtree/pkg/types"
)

// property is one stored (id, value) pair. Values use the canonical Go
// type of the property's kind; enum values are stored as uint8.
type property struct {
	id  PropertyID
	val any
}

// Node is an immutable set of semantic properties for one UI element.
// Use a Builder to create one.
type Node struct {
	class *nodeClass
	props []property // sorted by id, never contains flags
}

// Role returns the node's role.
func (n *Node) Role() Role { return n.class.role }

// Actions returns the set of supported actions.
func (n *Node) Actions() ActionSet { return n.class.actions }

// SupportsAction reports whether a is among the supported actions.
func (n *Node) SupportsAction(a Action) bool { return n.class.actions.Has(a) }

// Has reports whether property id is set.
func (n *Node) Has(id PropertyID) bool {
	if id.Kind() == KindFlag {
		_, ok := n.class.flags.get(id)
		return ok
	}
	_, ok := n.find(id)
	return ok
}

// Get returns the value of property id. Enum-valued properties are
// returned as their typed enum, slices as fresh copies.
func (n *Node) Get(id PropertyID) (any, bool) {
	switch id.Kind() {
	case KindInvalid:
		return nil, false
	case KindFlag:
		v, ok := n.class.flags.get(id)
		if !ok {
			return nil, false
		}
		return v, true
	}
	i, ok := n.find(id)
	if !ok {
		return nil, false
	}
	return exportValue(id, n.props[i].val), true
}

// Properties iterates over every set property in id order, flags
// included. Values are as returned by Get.
func (n *Node) Properties() iter.Seq2[PropertyID, any] {
	return func(yield func(PropertyID, any) bool) {
		for id := PropertyID(1); int(id) <= flagCount; id++ {
			if v, ok := n.class.flags.get(id); ok {
				if !yield(id, v) {
					return
				}
			}
		}
		for _, p := range n.props {
			if !yield(p.id, exportValue(p.id, p.val)) {
				return
			}
		}
	}
}

// Len returns the number of set properties, flags included.
func (n *Node) Len() int {
	flags := 0
	for id := PropertyID(1); int(id) <= flagCount; id++ {
		if _, ok := n.class.flags.get(id); ok {
			flags++
		}
	}
	return flags + len(n.props)
}

// References calls fn for every node id held by a relation property (every
// id-valued property except children), in property order. Iteration stops
// when fn returns false.
func (n *Node) References(fn func(PropertyID, types.NodeID) bool) {
	for _, p := range n.props {
		if !p.id.IsRelation() {
			continue
		}
		switch v := p.val.(type) {
		case types.NodeID:
			if !fn(p.id, v) {
				return
			}
		case []types.NodeID:
			for _, id := range v {
				if !fn(p.id, id) {
					return
				}
			}
		}
	}
}

// Equal reports whether n and o carry the same role, actions and
// properties. Floats compare bitwise so that re-sending an identical
// node, NaNs included, is never a change.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.class != o.class && *n.class != *o.class {
		return false
	}
	if len(n.props) != len(o.props) {
		return false
	}
	for i := range n.props {
		if n.props[i].id != o.props[i].id || !valuesEqual(n.props[i].val, o.props[i].val) {
			return false
		}
	}
	return true
}

// DiffProperties returns the ids of properties whose presence or value
// differs between n and o, in id order. Role and action changes are not
// properties and are not reported.
func (n *Node) DiffProperties(o *Node) []PropertyID {
	var out []PropertyID
	for id := PropertyID(1); int(id) <= propertyCount; id++ {
		if id.Kind() == KindFlag {
			av, aok := n.class.flags.get(id)
			bv, bok := o.class.flags.get(id)
			if aok != bok || av != bv {
				out = append(out, id)
			}
			continue
		}
		ai, aok := n.find(id)
		bi, bok := o.find(id)
		switch {
		case aok != bok:
			out = append(out, id)
		case aok && !valuesEqual(n.props[ai].val, o.props[bi].val):
			out = append(out, id)
		}
	}
	return out
}

func (n *Node) find(id PropertyID) (int, bool) {
	i := sort.Search(len(n.props), func(i int) bool { return n.props[i].id >= id })
	return i, i < len(n.props) && n.props[i].id == id
}

func (n *Node) flag(id PropertyID) (value, ok bool) { return n.class.flags.get(id) }

func scalar[T any](n *Node, id PropertyID) (T, bool) {
	var zero T
	i, ok := n.find(id)
	if !ok {
		return zero, false
	}
	v, ok := n.props[i].val.(T)
	return v, ok
}

func sliceOf[T any](n *Node, id PropertyID) []T {
	v, _ := scalar[[]T](n, id)
	return slices.Clone(v)
}

// exportValue converts a stored value into the form handed to callers.
func exportValue(id PropertyID, v any) any {
	if raw, ok := v.(uint8); ok && id.Kind() == KindEnum {
		return enumValue(id, raw)
	}
	return cloneValue(v)
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case []types.NodeID:
		return slices.Clone(x)
	case []uint8:
		return slices.Clone(x)
	case []float32:
		return slices.Clone(x)
	case []CustomAction:
		return slices.Clone(x)
	}
	return v
}

func valuesEqual(a, b any) bool {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && math.Float64bits(x) == math.Float64bits(y)
	case []types.NodeID:
		y, ok := b.([]types.NodeID)
		return ok && slices.Equal(x, y)
	case []uint8:
		y, ok := b.([]uint8)
		return ok && slices.Equal(x, y)
	case []float32:
		y, ok := b.([]float32)
		return ok && slices.EqualFunc(x, y, func(p, q float32) bool {
			return math.Float32bits(p) == math.Float32bits(q)
		})
	case []CustomAction:
		y, ok := b.([]CustomAction)
		return ok && slices.Equal(x, y)
	case geom.Affine:
		y, ok := b.(geom.Affine)
		return ok && floatsEqual(x[:], y[:])
	case geom.Rect:
		y, ok := b.(geom.Rect)
		return ok && floatsEqual([]float64{x.X0, x.Y0, x.X1, x.Y1}, []float64{y.X0, y.Y0, y.X1, y.Y1})
	}
	// string, int, uint32, uint8, types.NodeID, TextSelection
	return a == b
}

func floatsEqual(a, b []float64) bool {
	return slices.EqualFunc(a, b, func(p, q float64) bool {
		return math.Float64bits(p) == math.Float64bits(q)
	})
}
