package revolver

import (
	"errors"
	"fmt"
)

// Kind classifies why a plan could not be produced.
type Kind int

const (
	// KindUnknown is the zero value and never produced by this package.
	KindUnknown Kind = iota
	// KindInsufficientPayment means the payment does not exceed the first
	// period's interest, so the balance would never shrink.
	KindInsufficientPayment
	// KindInvalidInput means an argument was malformed or out of domain.
	KindInvalidInput
	// KindUnsupportedMode means the mode selector is not recognised.
	KindUnsupportedMode
)

// String returns the snake_case name used in logs and API responses.
func (k Kind) String() string {
	switch k {
	case KindInsufficientPayment:
		return "insufficient_payment"
	case KindInvalidInput:
		return "invalid_input"
	case KindUnsupportedMode:
		return "unsupported_mode"
	default:
		return "unknown"
	}
}

// Sentinel values for errors.Is comparisons. They match any *Error of the same
// Kind regardless of message.
var (
	ErrInsufficientPayment = &Error{Kind: KindInsufficientPayment, Msg: "payment does not exceed first period interest"}
	ErrInvalidInput        = &Error{Kind: KindInvalidInput, Msg: "invalid input"}
	ErrUnsupportedMode     = &Error{Kind: KindUnsupportedMode, Msg: "unsupported mode"}
)

// Error is the single error type returned by the plan engine.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or KindUnknown when err is nil or not
// produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// InvalidInput builds a KindInvalidInput error for op.
func InvalidInput(op, format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidInput, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedMode builds a KindUnsupportedMode error for the given selector.
func UnsupportedMode(op, mode string) error {
	return &Error{Kind: KindUnsupportedMode, Op: op, Msg: fmt.Sprintf("unsupported mode %q", mode)}
}

func insufficientPayment(op string, payment int64, interest float64) error {
	return &Error{
		Kind: KindInsufficientPayment,
		Op:   op,
		Msg:  fmt.Sprintf("payment %d does not exceed first period interest %.0f", payment, interest),
	}
}
