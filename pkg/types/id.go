package types

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Node identity space
// -----------------------------------------------------------------------------

// NodeID is an opaque 128-bit node identifier stored as 16 little-endian
// bytes. The zero value is reserved: it never names a real node and every
// tree operation rejects it.
type NodeID [16]byte

// InvalidNodeID is the reserved all-zero identifier.
var InvalidNodeID NodeID

// NodeIDFromUint64 returns the identifier whose low 64 bits are u.
// ok is false when u is zero, since that would yield the reserved id.
func NodeIDFromUint64(u uint64) (id NodeID, ok bool) {
	if u == 0 {
		return InvalidNodeID, false
	}
	binary.LittleEndian.PutUint64(id[:8], u)
	return id, true
}

// MustNodeID is like NodeIDFromUint64 but panics on zero. Intended for
// tests and static fixtures.
func MustNodeID(u uint64) NodeID {
	id, ok := NodeIDFromUint64(u)
	if !ok {
		panic("types: zero is not a valid NodeID")
	}
	return id
}

// NodeIDFromParts builds an identifier from its high and low 64-bit halves.
func NodeIDFromParts(hi, lo uint64) (id NodeID, ok bool) {
	binary.LittleEndian.PutUint64(id[:8], lo)
	binary.LittleEndian.PutUint64(id[8:], hi)
	return id, !id.IsZero()
}

// NodeIDFromBytes interprets b as 16 little-endian bytes.
func NodeIDFromBytes(b []byte) (NodeID, error) {
	var id NodeID
	if len(b) != len(id) {
		return InvalidNodeID, Errorf(ErrKindFormat, "node id must be %d bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)
	if id.IsZero() {
		return InvalidNodeID, Errorf(ErrKindFormat, "node id must not be zero")
	}
	return id, nil
}

// NodeIDFromUUID maps a UUID onto the identity space. The UUID's 128-bit
// big-endian value becomes the identifier's numeric value, so the id's
// String form equals the UUID's hex digits without dashes.
func NodeIDFromUUID(u uuid.UUID) (NodeID, bool) {
	var id NodeID
	for i := range u {
		id[len(id)-1-i] = u[i]
	}
	return id, !id.IsZero()
}

// NewRandomNodeID returns a fresh random (version 4 UUID) identifier.
func NewRandomNodeID() NodeID {
	id, _ := NodeIDFromUUID(uuid.New())
	return id
}

// IsZero reports whether id is the reserved invalid identifier.
func (id NodeID) IsZero() bool { return id == InvalidNodeID }

// Lo returns the low 64 bits.
func (id NodeID) Lo() uint64 { return binary.LittleEndian.Uint64(id[:8]) }

// Hi returns the high 64 bits.
func (id NodeID) Hi() uint64 { return binary.LittleEndian.Uint64(id[8:]) }

// Uint64 returns the identifier as a uint64 when its high half is zero.
func (id NodeID) Uint64() (uint64, bool) {
	if id.Hi() != 0 {
		return 0, false
	}
	return id.Lo(), true
}

// UUID returns the identifier reinterpreted as a UUID. It is the inverse of
// NodeIDFromUUID.
func (id NodeID) UUID() uuid.UUID {
	var u uuid.UUID
	for i := range id {
		u[len(u)-1-i] = id[i]
	}
	return u
}

// Compare orders identifiers by numeric value. It returns -1, 0 or +1.
func (id NodeID) Compare(other NodeID) int {
	switch {
	case id.Hi() < other.Hi():
		return -1
	case id.Hi() > other.Hi():
		return 1
	case id.Lo() < other.Lo():
		return -1
	case id.Lo() > other.Lo():
		return 1
	}
	return 0
}

// String renders small identifiers in decimal and everything else as 32
// hex digits, most significant first.
func (id NodeID) String() string {
	if v, ok := id.Uint64(); ok {
		return strconv.FormatUint(v, 10)
	}
	u := id.UUID()
	return hex.EncodeToString(u[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id NodeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts decimal
// numbers, 32 hex digits (optionally prefixed with 0x) and canonical UUID
// text.
func (id *NodeID) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseNodeID parses the text forms accepted by UnmarshalText.
func ParseNodeID(s string) (NodeID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return InvalidNodeID, Errorf(ErrKindFormat, "empty node id")
	}

	// 1. Canonical UUID text.
	if len(s) == 36 && strings.Count(s, "-") == 4 {
		u, err := uuid.Parse(s)
		if err != nil {
			return InvalidNodeID, Wrap(ErrKindFormat, err, "invalid node id "+strconv.Quote(s))
		}
		id, ok := NodeIDFromUUID(u)
		if !ok {
			return InvalidNodeID, Errorf(ErrKindFormat, "node id must not be zero")
		}
		return id, nil
	}

	// 2. Full-width hex.
	hexDigits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(hexDigits) == 32 {
		var u uuid.UUID
		if _, err := hex.Decode(u[:], []byte(hexDigits)); err != nil {
			return InvalidNodeID, Wrap(ErrKindFormat, err, "invalid node id "+strconv.Quote(s))
		}
		id, ok := NodeIDFromUUID(u)
		if !ok {
			return InvalidNodeID, Errorf(ErrKindFormat, "node id must not be zero")
		}
		return id, nil
	}

	// 3. Decimal (or short hex with an explicit prefix).
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return InvalidNodeID, Wrap(ErrKindFormat, err, "invalid node id "+strconv.Quote(s))
	}
	id, ok := NodeIDFromUint64(v)
	if !ok {
		return InvalidNodeID, Errorf(ErrKindFormat, "node id must not be zero")
	}
	return id, nil
}
