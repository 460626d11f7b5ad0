package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrWrongAccount is returned when the caller is not one of the
	// registered notaries.
	ErrWrongAccount = Register(-1, "wrong account")

	// ErrTooEarly is reserved for a release attempt before the configured
	// release time. The host enforces the time constraint before the core
	// runs, so the current logic never produces it.
	ErrTooEarly = Register(-2, "too early")

	// ErrNotApproved is returned when the approval counter has not
	// reached the configured threshold.
	ErrNotApproved = Register(-3, "not approved")

	// ErrDataRead is returned when the record cannot be read from or
	// written back to the host.
	ErrDataRead = Register(-4, "data read failure")

	// ErrHostCall is returned when any other host accessor fails.
	ErrHostCall = Register(-5, "host call failure")

	// ErrBadConfig is returned when the roster or threshold fields of the
	// record are missing or malformed.
	ErrBadConfig = Register(-6, "bad configuration")

	// ErrAlreadyApproved is returned when a notary slot that already
	// carries an approval is approved again before being revoked.
	ErrAlreadyApproved = Register(-7, "already approved")

	// ErrCooldown is reserved for rate limiting of finish attempts. No
	// code path compares last_attempt_seq against a cooldown window yet.
	ErrCooldown = Register(-8, "cooldown")

	// ErrInput is used by the low level parsers and codecs for malformed
	// input. It carries no wire outcome and must be translated (usually
	// into ErrBadConfig) before reaching an entry point.
	ErrInput = Register(-100, "invalid input")

	// ErrOverflow is returned when a parsed value exceeds the type.
	ErrOverflow = Register(-101, "value overflow")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// All root errors of the decision logic are declared in this package. This
// function ensures that no outcome code is used twice. Attempt to reuse a
// code results in panic.
//
// Use this function only during a program startup phase.
func Register(code int32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No
// two error instances should share the same outcome code. Code 1 is the
// success code and can never belong to an error.
var usedCodes = map[int32]*Error{
	1: nil,
}

// Error represents a root error.
//
// Each error instance created during runtime should wrap one of the root
// errors declared here. This allows error tests and translating every error
// into the signed outcome code the host understands.
type Error struct {
	code int32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// OutcomeCode returns the signed wire code of this error kind.
func (e Error) OutcomeCode() int32 {
	return e.code
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//   e.New("my description")
//   Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (kind *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if kind == nil {
		if err == nil {
			return true
		}
		return reflect.ValueOf(err).IsNil()
	}

	for {
		if err == kind {
			return true
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If the wrapped error does not provide OutcomeCode method (ie. stdlib
// errors), it is treated as a host call failure at the entry boundary.
//
// If err is nil, this returns nil, avoiding the need for an if statement
// when wrapping an error returned at the end of a function.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet, attach
	// one. This should be done only once per error at the lowest frame
	// possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional functionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// stackTrace returns the first found stack trace frame carried by given
// error or any wrapped by it error. If no stack trace is found, nil is
// returned.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

// stackTracer from pkg/errors.
type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}
