package errors

import (
	stdlib "errors"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"errors are self-causing": {
			err:  ErrNotApproved,
			root: ErrNotApproved,
		},
		"wrap reveals root cause": {
			err:  Wrap(ErrNotApproved, "foo"),
			root: ErrNotApproved,
		},
		"cause works for stderr as root": {
			err:  Wrap(std, "some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrWrongAccount,
			b:      ErrWrongAccount,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrWrongAccount,
			b:      ErrBadConfig,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrAlreadyApproved,
			b:      Wrap(ErrAlreadyApproved, "notary 2"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrAlreadyApproved,
			b:      Wrap(ErrOverflow, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrBadConfig,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrBadConfig,
			b:      Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrBadConfig,
			wantIs: false,
		},
		"not-nil is not nil": {
			a:      ErrBadConfig,
			b:      nil,
			wantIs: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	// -1 is taken by ErrWrongAccount.
	Register(-1, "duplicate")
}

func TestRegisterPanicsOnSuccessCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(1, "not an error")
}

func TestWrapNilIsNil(t *testing.T) {
	if err := Wrap(nil, "some context"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrappedErrorMessage(t *testing.T) {
	err := Wrap(Wrap(ErrBadConfig, "foo"), "bar")
	const want = "bar: foo: bad configuration"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

type customError struct{}

func (customError) Error() string {
	return "custom error"
}
