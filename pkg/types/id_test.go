package types

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeIDFromUint64(t *testing.T) {
	_, ok := NodeIDFromUint64(0)
	require.False(t, ok, "zero must be rejected")

	id, ok := NodeIDFromUint64(42)
	require.True(t, ok)
	require.False(t, id.IsZero())
	require.Equal(t, byte(42), id[0], "low byte first")

	v, ok := id.Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(42), v)
}

func TestMustNodeIDPanicsOnZero(t *testing.T) {
	require.Panics(t, func() { MustNodeID(0) })
}

func TestNodeID_String(t *testing.T) {
	tests := []struct {
		name     string
		id       NodeID
		expected string
	}{
		{name: "small", id: MustNodeID(7), expected: "7"},
		{name: "max uint64", id: MustNodeID(^uint64(0)), expected: "18446744073709551615"},
		{
			name: "high half set",
			id: func() NodeID {
				id, _ := NodeIDFromParts(1, 2)
				return id
			}(),
			expected: "00000000000000010000000000000002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.id.String())
		})
	}
}

func TestParseNodeID(t *testing.T) {
	wide, _ := NodeIDFromParts(1, 2)
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	fromUUID, ok := NodeIDFromUUID(u)
	require.True(t, ok)

	tests := []struct {
		name    string
		input   string
		want    NodeID
		wantErr bool
	}{
		{name: "decimal", input: "12", want: MustNodeID(12)},
		{name: "prefixed hex", input: "0x10", want: MustNodeID(16)},
		{name: "wide hex", input: "00000000000000010000000000000002", want: wide},
		{name: "uuid", input: u.String(), want: fromUUID},
		{name: "zero", input: "0", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "node-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNodeID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrFormat))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNodeID_TextRoundTrip(t *testing.T) {
	for _, id := range []NodeID{MustNodeID(1), NewRandomNodeID()} {
		text, err := id.MarshalText()
		require.NoError(t, err)

		var back NodeID
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, id, back)
	}
}

func TestNodeIDFromUUID_MatchesHex(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	id, ok := NodeIDFromUUID(u)
	require.True(t, ok)
	assert.Equal(t, "6ba7b8109dad11d180b400c04fd430c8", id.String())
	assert.Equal(t, u, id.UUID())
}

func TestNodeIDFromBytes(t *testing.T) {
	_, err := NodeIDFromBytes(make([]byte, 3))
	require.Error(t, err)

	_, err = NodeIDFromBytes(make([]byte, 16))
	require.Error(t, err, "all-zero bytes are reserved")

	b := make([]byte, 16)
	b[0] = 9
	id, err := NodeIDFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, MustNodeID(9), id)
}

func TestNodeID_Compare(t *testing.T) {
	lo := MustNodeID(5)
	hi, _ := NodeIDFromParts(1, 0)
	assert.Equal(t, -1, lo.Compare(hi))
	assert.Equal(t, 1, hi.Compare(lo))
	assert.Equal(t, 0, lo.Compare(MustNodeID(5)))
}

func TestError_IsMatchesKind(t *testing.T) {
	err := Errorf(ErrKindNotFound, "node %s", MustNodeID(3))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrFormat))
	assert.Equal(t, "node 3", err.Error())

	wrapped := Wrap(ErrKindFormat, errors.New("eof"), "decode")
	assert.Equal(t, "decode: eof", wrapped.Error())
	assert.True(t, errors.Is(wrapped, ErrFormat))
}
