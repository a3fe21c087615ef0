package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed encoded input (wire payloads, scripts, ids)
	ErrKindType                       // value does not match the property's declared kind
	ErrKindNotFound                   // unknown node, property or enum name
	ErrKindUnsupported                // valid request the target does not support
	ErrKindState                      // invalid operation for current state (e.g., inactive adapter)
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindType:
		return "type"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. This lets
// errors.Is(err, types.ErrNotFound) match any not-found error regardless
// of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind around cause.
func Wrap(kind ErrKind, cause error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrFormat indicates malformed encoded input.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "malformed input"}
	// ErrTypeMismatch indicates a value of the wrong Go type for a property.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "value has different type"}
	// ErrNotFound indicates a missing node, property or enum value.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrUnsupported indicates a request the target does not support.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported"}
	// ErrInactive indicates an operation that needs an active adapter.
	ErrInactive = &Error{Kind: ErrKindState, Msg: "adapter is not active"}
)
