package core

import (
	"errors"
	"fmt"
)

// Code is the numeric error condition reported through the engine's
// last-error slot. Values follow the reference TA function library.
type Code int

const (
	Success              Code = 0
	LibNotInitialize     Code = 1
	BadParam             Code = 2
	AllocErr             Code = 3
	GroupNotFound        Code = 4
	FuncNotFound         Code = 5
	OutOfRangeStartIndex Code = 12
	OutOfRangeEndIndex   Code = 13
	NotSupported         Code = 16
	InternalError        Code = 5000
	UnknownError         Code = 65535
)

func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case LibNotInitialize:
		return "not initialized"
	case BadParam:
		return "bad parameter"
	case AllocErr:
		return "allocation failure"
	case GroupNotFound:
		return "unknown group"
	case FuncNotFound:
		return "unknown function"
	case OutOfRangeStartIndex:
		return "start index out of range"
	case OutOfRangeEndIndex:
		return "end index out of range"
	case NotSupported:
		return "unsupported"
	case InternalError:
		return "internal error"
	default:
		return fmt.Sprintf("unknown error (%d)", int(c))
	}
}

// Sentinels usable with errors.Is.
var (
	ErrNotInitialized  = &Error{Code: LibNotInitialize}
	ErrBadParam        = &Error{Code: BadParam}
	ErrAlloc           = &Error{Code: AllocErr}
	ErrUnknownGroup    = &Error{Code: GroupNotFound}
	ErrUnknownFunction = &Error{Code: FuncNotFound}
	ErrOutOfRange      = &Error{Code: OutOfRangeStartIndex}
	ErrUnsupported     = &Error{Code: NotSupported}
	ErrInternal        = &Error{Code: InternalError}
)

// Error describes a rejected or failed operation.
type Error struct {
	Code Code
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Msg)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	default:
		return e.Code.String()
	}
}

// Is reports whether target carries the same code. Both out-of-range codes
// match ErrOutOfRange.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	if isRangeCode(e.Code) && isRangeCode(t.Code) {
		return true
	}
	return e.Code == t.Code
}

func isRangeCode(c Code) bool {
	return c == OutOfRangeStartIndex || c == OutOfRangeEndIndex
}

// Errorf builds an *Error for op with a formatted message.
func Errorf(code Code, op, format string, args ...any) error {
	return &Error{Code: code, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// BadParamf is shorthand for Errorf(BadParam, ...).
func BadParamf(op, format string, args ...any) error {
	return Errorf(BadParam, op, format, args...)
}

// CodeOf maps err to its Code. nil maps to Success, foreign errors to
// UnknownError.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return UnknownError
}
