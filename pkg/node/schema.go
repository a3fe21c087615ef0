package node

import (
	"fmt"
	"strings"

	"github.com/joshuapare/axtree/pkg/types"
)

// PropertyID identifies one optional node property. The zero value is not
// a property.
type PropertyID uint8

// PropertyKind is the value type of a property.
type PropertyKind uint8

const (
	KindInvalid       PropertyKind = iota
	KindFlag                       // bool, tri-state
	KindNodeIDList                 // []types.NodeID
	KindNodeID                     // types.NodeID
	KindString                     // string
	KindFloat                      // float64
	KindInt                        // int
	KindColor                      // uint32, 0xRRGGBBAA
	KindEnum                       // one of the generated enum types
	KindLengths                    // []uint8
	KindCoords                     // []float32
	KindAffine                     // geom.Affine
	KindRect                       // geom.Rect
	KindTextSelection              // TextSelection
	KindCustomActions              // []CustomAction
)

var kindNames = [...]string{
	KindInvalid:       "invalid",
	KindFlag:          "flag",
	KindNodeIDList:    "node_ids",
	KindNodeID:        "node_id",
	KindString:        "string",
	KindFloat:         "float",
	KindInt:           "int",
	KindColor:         "color",
	KindEnum:          "enum",
	KindLengths:       "lengths",
	KindCoords:        "coords",
	KindAffine:        "affine",
	KindRect:          "rect",
	KindTextSelection: "text_selection",
	KindCustomActions: "custom_actions",
}

func (k PropertyKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("PropertyKind(%d)", uint8(k))
}

// PropertyInfo describes one schema entry.
type PropertyInfo struct {
	ID   PropertyID
	Name string // snake_case, as in the schema
	Kind PropertyKind
	Enum string // enum type name, for KindEnum only
}

// Info returns the schema entry for id. The zero PropertyInfo is returned
// for unknown ids.
func (id PropertyID) Info() PropertyInfo {
	if !id.IsValid() {
		return PropertyInfo{}
	}
	return properties[id]
}

// IsValid reports whether id names a schema property.
func (id PropertyID) IsValid() bool { return id > 0 && int(id) <= propertyCount }

// Kind returns the property's value kind.
func (id PropertyID) Kind() PropertyKind { return id.Info().Kind }

// String returns the property's schema name.
func (id PropertyID) String() string {
	if !id.IsValid() {
		return fmt.Sprintf("PropertyID(%d)", uint8(id))
	}
	return properties[id].Name
}

// IsRelation reports whether id holds references to other nodes, not
// counting children.
func (id PropertyID) IsRelation() bool {
	k := id.Kind()
	return (k == KindNodeID || k == KindNodeIDList) && id != PropChildren
}

// AllProperties returns every schema entry in id order.
func AllProperties() []PropertyInfo {
	out := make([]PropertyInfo, propertyCount)
	copy(out, properties[1:])
	return out
}

// RelationProperties returns the id-valued properties other than children.
func RelationProperties() []PropertyID {
	out := make([]PropertyID, len(relationProperties))
	copy(out, relationProperties)
	return out
}

var propertyIndex = func() map[string]PropertyID {
	m := make(map[string]PropertyID, propertyCount)
	for _, p := range properties[1:] {
		m[normalizeName(p.Name)] = p.ID
	}
	return m
}()

// LookupProperty finds a property by name. Matching ignores case,
// underscores and hyphens, so "labelled_by" and "labelledBy" are the same.
func LookupProperty(name string) (PropertyID, bool) {
	id, ok := propertyIndex[normalizeName(name)]
	return id, ok
}

// ParseEnumValue parses the text form of a value for an enum-valued
// property and returns it as the property's typed enum.
func ParseEnumValue(id PropertyID, s string) (any, error) {
	return parseEnum(id, s)
}

// EnumFromRaw converts the stored byte of an enum-valued property into its
// typed enum. ok is false for non-enum properties or out-of-range values.
func EnumFromRaw(id PropertyID, raw uint8) (any, bool) {
	v := enumValue(id, raw)
	if v == nil {
		return nil, false
	}
	if vv, ok := v.(interface{ IsValid() bool }); ok && !vv.IsValid() {
		return nil, false
	}
	return v, true
}

// EnumToRaw converts a typed enum value into its stored byte.
func EnumToRaw(id PropertyID, v any) (uint8, bool) {
	return enumRaw(id, v)
}

func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ':
			continue
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lookupName(names []string, s string) (int, bool) {
	want := normalizeName(s)
	for i, n := range names {
		if normalizeName(n) == want {
			return i, true
		}
	}
	return 0, false
}

func unknownName(enum, s string) error {
	return types.Errorf(types.ErrKindNotFound, "unknown %s %q", enum, s)
}

func notEnum(id PropertyID) error {
	return types.Errorf(types.ErrKindType, "property %s is not enum-valued", id)
}
