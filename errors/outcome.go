package errors

import (
	"reflect"
)

const (
	// SuccessOutcomeCode signals to the host that the processing was
	// successful and the action is permitted.
	SuccessOutcomeCode int32 = 1

	// All unclassified errors that do not provide an outcome code are
	// reported as a host call failure. The only errors crossing the entry
	// boundary without a registered code originate from the host itself.
	internalOutcomeCode int32 = -5
)

// OutcomeCode translates an error into the signed wire code handed back to
// the host. A nil error translates to the success code. Any error that does
// not expose an outcome code is categorized as a host call failure.
func OutcomeCode(err error) int32 {
	if errIsNil(err) {
		return SuccessOutcomeCode
	}

	for {
		if c, ok := err.(coder); ok {
			return c.OutcomeCode()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalOutcomeCode
		}
	}
}

type coder interface {
	OutcomeCode() int32
}

// errIsNil returns true if value represented by the given error is nil.
//
// Most of the time a simple == check is enough. There is a very narrowed
// spectrum of cases (mostly in tests) where a more sophisticated check is
// required.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
