package eleverr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unknown Kind = iota
	InvalidArgumentKind
	InvalidOperationKind
	NotFoundKind
)

func (k Kind) String() string {
	switch k {
	case InvalidArgumentKind:
		return "InvalidArgument"
	case InvalidOperationKind:
		return "InvalidOperation"
	case NotFoundKind:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is. Any *Error of the matching kind compares equal.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNotFound         = errors.New("not found")
)

func (k Kind) sentinel() error {
	switch k {
	case InvalidArgumentKind:
		return ErrInvalidArgument
	case InvalidOperationKind:
		return ErrInvalidOperation
	case NotFoundKind:
		return ErrNotFound
	default:
		return nil
	}
}

type Error struct {
	Kind Kind
	Op   string //operation that failed, e.g. "elevator.MoveToFloor"
	Msg  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

func newError(kind Kind, op string, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func InvalidArgument(op string, format string, args ...any) error {
	return newError(InvalidArgumentKind, op, format, args...)
}

func InvalidOperation(op string, format string, args ...any) error {
	return newError(InvalidOperationKind, op, format, args...)
}

func NotFound(op string, format string, args ...any) error {
	return newError(NotFoundKind, op, format, args...)
}

// KindOf digs through wrapped errors. Returns Unknown for nil or foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
