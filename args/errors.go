package args

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind categorizes an argument parsing failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindStructural is a malformed simple arg token or malformed JSON.
	KindStructural
	// KindUnknownType is an unrecognized type name or type shape.
	KindUnknownType
	// KindRange is a number that does not fit its declared width.
	KindRange
	// KindShape is a JSON value whose shape does not fit the declared type.
	KindShape
	// KindLength is a tuple, byte array or map entry of the wrong size.
	KindLength
	// KindVariant is a tagged JSON object naming the wrong variant.
	KindVariant
	// KindDomain is a value rejected by a formatted-string or hex parser.
	KindDomain
	// KindConflict is more than one source given for a single arg slot.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindUnknownType:
		return "unknown type"
	case KindRange:
		return "range"
	case KindShape:
		return "shape mismatch"
	case KindLength:
		return "length mismatch"
	case KindVariant:
		return "variant mismatch"
	case KindDomain:
		return "domain parse"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

type kinded interface {
	Kind() Kind
}

// KindOf returns the category of the first categorized error in err's
// chain, or KindUnknown.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// Error is a categorized failure. It optionally wraps the error of the
// parser that rejected the value.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func errorf(kind Kind, format string, a ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, a...)}
}

func wrapError(kind Kind, err error, format string, a ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, a...), err: err}
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// ConflictError reports more than one source given for a single arg slot.
type ConflictError struct {
	Context string
	Args    []string
}

func (e *ConflictError) Kind() Kind {
	return KindConflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting arguments passed '%s' [%s]", e.Context, strings.Join(e.Args, ", "))
}
