package node

import (
	"fmt"
	"slices"
	"sort"

	"github.com/joshuapare/axtree/pkg/geom"
	"github.com/joshuapare/axtree/pkg/types"
)

// Builder accumulates the properties of a node. The zero Builder has role
// Unknown and no properties. A Builder may keep being modified after
// Build; nodes already built are unaffected.
type Builder struct {
	class nodeClass
	props []property
}

// NewBuilder returns a Builder for a node with the given role.
func NewBuilder(role Role) *Builder {
	return &Builder{class: nodeClass{role: role}}
}

// BuilderFrom returns a Builder initialized with every value of n.
func BuilderFrom(n *Node) *Builder {
	b := &Builder{class: *n.class, props: make([]property, len(n.props))}
	for i, p := range n.props {
		b.props[i] = property{id: p.id, val: cloneValue(p.val)}
	}
	return b
}

// Role returns the role the node will have.
func (b *Builder) Role() Role { return b.class.role }

// SetRole changes the role.
func (b *Builder) SetRole(r Role) *Builder {
	b.class.role = r
	return b
}

// AddAction adds a to the supported actions.
func (b *Builder) AddAction(a Action) *Builder {
	b.class.actions = b.class.actions.With(a)
	return b
}

// RemoveAction removes a from the supported actions.
func (b *Builder) RemoveAction(a Action) *Builder {
	b.class.actions = b.class.actions.Without(a)
	return b
}

// SetActions replaces the supported actions.
func (b *Builder) SetActions(s ActionSet) *Builder {
	b.class.actions = s
	return b
}

// ClearActions removes every supported action.
func (b *Builder) ClearActions() *Builder {
	b.class.actions = 0
	return b
}

// Set assigns property id from an untyped value. The value must have the
// Go type of the property's kind (see PropertyKind); enum-valued
// properties take their typed enum. Set returns a types.ErrKindType error
// on a mismatch and leaves the builder unchanged.
func (b *Builder) Set(id PropertyID, value any) error {
	kind := id.Kind()
	if kind == KindInvalid {
		return types.Errorf(types.ErrKindNotFound, "unknown property id %d", uint8(id))
	}

	mismatch := func() error {
		return types.Errorf(types.ErrKindType, "property %s (%s) cannot hold %T", id, kind, value)
	}

	switch kind {
	case KindFlag:
		v, ok := value.(bool)
		if !ok {
			return mismatch()
		}
		b.setFlag(id, v)
		return nil
	case KindEnum:
		raw, ok := enumRaw(id, value)
		if !ok {
			return mismatch()
		}
		if _, valid := EnumFromRaw(id, raw); !valid {
			return types.Errorf(types.ErrKindType, "property %s: value %d out of range", id, raw)
		}
		b.put(id, raw)
		return nil
	}

	var ok bool
	switch kind {
	case KindNodeIDList:
		_, ok = value.([]types.NodeID)
	case KindNodeID:
		_, ok = value.(types.NodeID)
	case KindString:
		_, ok = value.(string)
	case KindFloat:
		_, ok = value.(float64)
	case KindInt:
		_, ok = value.(int)
	case KindColor:
		_, ok = value.(uint32)
	case KindLengths:
		_, ok = value.([]uint8)
	case KindCoords:
		_, ok = value.([]float32)
	case KindAffine:
		_, ok = value.(geom.Affine)
	case KindRect:
		_, ok = value.(geom.Rect)
	case KindTextSelection:
		_, ok = value.(TextSelection)
	case KindCustomActions:
		_, ok = value.([]CustomAction)
	}
	if !ok {
		return mismatch()
	}
	b.put(id, value)
	return nil
}

// Clear unsets property id.
func (b *Builder) Clear(id PropertyID) *Builder {
	b.clear(id)
	return b
}

// Has reports whether property id is currently set on the builder.
func (b *Builder) Has(id PropertyID) bool {
	if id.Kind() == KindFlag {
		_, ok := b.class.flags.get(id)
		return ok
	}
	_, ok := b.find(id)
	return ok
}

// Build freezes the builder's current values into a Node. classes may be
// nil, in which case the node gets a private class.
func (b *Builder) Build(classes *ClassSet) *Node {
	n := &Node{
		class: classes.intern(b.class),
		props: make([]property, len(b.props)),
	}
	for i, p := range b.props {
		n.props[i] = property{id: p.id, val: cloneValue(p.val)}
	}
	return n
}

// String summarizes the builder for debugging.
func (b *Builder) String() string {
	return fmt.Sprintf("Builder{role: %s, actions: %d, properties: %d}",
		b.class.role, b.class.actions.Len(), len(b.props))
}

func (b *Builder) find(id PropertyID) (int, bool) {
	i := sort.Search(len(b.props), func(i int) bool { return b.props[i].id >= id })
	return i, i < len(b.props) && b.props[i].id == id
}

func (b *Builder) setFlag(id PropertyID, v bool) { b.class.flags.put(id, v) }

// put stores v (already of the property's canonical type) for id.
func (b *Builder) put(id PropertyID, v any) {
	v = cloneValue(v)
	i, ok := b.find(id)
	if ok {
		b.props[i].val = v
		return
	}
	b.props = slices.Insert(b.props, i, property{id: id, val: v})
}

func (b *Builder) clear(id PropertyID) {
	if id.Kind() == KindFlag {
		b.class.flags.clear(id)
		return
	}
	if i, ok := b.find(id); ok {
		b.props = slices.Delete(b.props, i, i+1)
	}
}

func push[T any](b *Builder, id PropertyID, v T) {
	i, ok := b.find(id)
	if !ok {
		b.props = slices.Insert(b.props, i, property{id: id, val: []T{v}})
		return
	}
	list, _ := b.props[i].val.([]T)
	b.props[i].val = append(list, v)
}
