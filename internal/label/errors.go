package label

import "fmt"

// ErrorKind is the machine-readable classification of a composition failure.
// The HTTP layer maps kinds to response codes; the core never retries, since
// every operation is deterministic over its input.
type ErrorKind string

const (
	// KindInvalidInput marks a caller input error: a missing required field
	// or a field containing only whitespace.
	KindInvalidInput ErrorKind = "INVALID_INPUT"
	// KindDecode marks unparseable image data on the raster path.
	KindDecode ErrorKind = "DECODE_ERROR"
	// KindGeometry marks non-positive label dimensions or a label too small
	// to fit any content once margins are subtracted.
	KindGeometry ErrorKind = "GEOMETRY_ERROR"
)

// Error carries a kind plus human-readable detail.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is reports kind equality so callers can match with errors.Is against a
// bare-kind sentinel, e.g. errors.Is(err, &Error{Kind: KindGeometry}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Detail == "" || t.Detail == e.Detail)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// ErrInvalidInput, ErrDecode and ErrGeometry are bare-kind sentinels for
// errors.Is matching.
var (
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrDecode       = &Error{Kind: KindDecode}
	ErrGeometry     = &Error{Kind: KindGeometry}
)
