package oradb

import (
	"errors"
	"fmt"

	"github.com/connerohnesorge/oradb-go/internal/odpi"
)

// ErrorKind classifies errors returned by this package. All kinds are
// recoverable: they are returned to the caller and never abort the process.
type ErrorKind int

const (
	// KindOther is an error that fits no other kind.
	KindOther ErrorKind = iota
	// KindOutOfRange is a value or field outside its valid domain.
	KindOutOfRange
	// KindNullValue is a null read into a non-nullable destination.
	KindNullValue
	// KindParse is text that does not match the grammar of the target type.
	KindParse
	// KindInvalidTypeConversion is a host/Oracle type pairing with no
	// defined conversion.
	KindInvalidTypeConversion
	// KindNotImplemented is an operation that is structurally unsupported,
	// such as writing a read-only attribute.
	KindNotImplemented
	// KindInternal is an unexpected value observed from the native layer.
	KindInternal
	// KindNoDataFound is the native "no data found" condition.
	KindNoDataFound
	// KindOCI is an error reported by the native client library.
	KindOCI
)

func (k ErrorKind) String() string {
	switch k {
	case KindOutOfRange:
		return "out of range"
	case KindNullValue:
		return "null value"
	case KindParse:
		return "parse error"
	case KindInvalidTypeConversion:
		return "invalid type conversion"
	case KindNotImplemented:
		return "not implemented"
	case KindInternal:
		return "internal error"
	case KindNoDataFound:
		return "no data found"
	case KindOCI:
		return "OCI error"
	default:
		return "error"
	}
}

// Error is the error type returned by this package.
type Error struct {
	kind ErrorKind
	msg  string
	err  error
}

// Kind returns the error classification.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return e.kind.String()
}

func (e *Error) Unwrap() error {
	return e.err
}

func newOutOfRange(format string, args ...any) *Error {
	return &Error{kind: KindOutOfRange, msg: fmt.Sprintf(format, args...)}
}

func newNullValue() *Error {
	return &Error{kind: KindNullValue, msg: "NULL value found"}
}

// newParseError reports text that failed to parse as the named type.
func newParseError(typeName string) *Error {
	return &Error{kind: KindParse, msg: fmt.Sprintf("invalid %s literal", typeName)}
}

func newInvalidConversion(from, to string) *Error {
	return &Error{kind: KindInvalidTypeConversion, msg: fmt.Sprintf("cannot convert %s to %s", from, to)}
}

func newNotImplemented(what string) *Error {
	return &Error{kind: KindNotImplemented, msg: what + " is not implemented"}
}

func newInternal(format string, args ...any) *Error {
	return &Error{kind: KindInternal, msg: fmt.Sprintf(format, args...)}
}

// wrapNative converts an error reported by the native layer into an *Error.
func wrapNative(err error) error {
	if err == nil {
		return nil
	}
	var oe *Error
	if errors.As(err, &oe) {
		return err
	}
	var ne *odpi.NativeError
	if errors.As(err, &ne) {
		kind := KindOCI
		// ORA-01403: no data found
		if ne.Code == 1403 {
			kind = KindNoDataFound
		}
		return &Error{kind: kind, msg: ne.Message, err: err}
	}
	return &Error{kind: KindOther, err: err}
}

// ErrKind returns the ErrorKind of err, or KindOther when err does not
// originate from this package.
func ErrKind(err error) ErrorKind {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Kind()
	}
	return KindOther
}
