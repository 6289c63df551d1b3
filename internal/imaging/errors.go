package imaging

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure by the surface it occurred on.
type Kind int

const (
	// KindOpen means the path could not be opened (missing, permissions, I/O).
	KindOpen Kind = iota + 1
	// KindDecode means the content is not an image any registered codec understands.
	KindDecode
	// KindEncode means the resized raster could not be written as PNG.
	KindEncode
	// KindDimensionRead means the container header could not be parsed for a size.
	KindDimensionRead
	// KindRead means the file could not be read in full for fingerprinting.
	KindRead
)

// String returns the taxonomy name of the kind, e.g. "DecodeError".
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "OpenError"
	case KindDecode:
		return "DecodeError"
	case KindEncode:
		return "EncodeError"
	case KindDimensionRead:
		return "DimensionReadError"
	case KindRead:
		return "ReadError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is. A returned *Error matches the sentinel of its kind.
var (
	ErrOpen          = &Error{Kind: KindOpen}
	ErrDecode        = &Error{Kind: KindDecode}
	ErrEncode        = &Error{Kind: KindEncode}
	ErrDimensionRead = &Error{Kind: KindDimensionRead}
	ErrRead          = &Error{Kind: KindRead}
)

// Error is the single categorized failure returned by every operation in
// this package. Err holds the low-level cause from the OS or the codec.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func newError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// Message is the human readable description without the kind prefix.
func (e *Error) Message() string {
	if e.Op == "" {
		return "image operation failed"
	}
	msg := "failed to " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Cause returns the text of the underlying error, or "" if there is none.
func (e *Error) Cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Path == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
