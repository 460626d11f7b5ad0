package quorum

import (
	"strings"
	"testing"

	"github.com/iov-one/quorum/errors"
)

func TestNewIdentity(t *testing.T) {
	id := NewIdentity([]byte("some public key material"))
	if len(id) != IdentityLen {
		t.Fatalf("want %d bytes, got %d", IdentityLen, len(id))
	}
	if err := id.Validate(); err != nil {
		t.Fatalf("derived identity must be valid: %+v", err)
	}

	// Derivation is deterministic.
	again := NewIdentity([]byte("some public key material"))
	if !id.Equals(again) {
		t.Fatal("same input must derive the same identity")
	}
	other := NewIdentity([]byte("different material"))
	if id.Equals(other) {
		t.Fatal("different input must derive a different identity")
	}

	if NewIdentity(nil) != nil {
		t.Fatal("nil input must derive a nil identity")
	}
}

func TestIdentityValidate(t *testing.T) {
	cases := map[string]struct {
		id      Identity
		wantErr *errors.Error
	}{
		"valid": {
			id: make(Identity, IdentityLen),
		},
		"nil": {
			id:      nil,
			wantErr: errors.ErrInput,
		},
		"too short": {
			id:      make(Identity, IdentityLen-1),
			wantErr: errors.ErrInput,
		},
		"too long": {
			id:      make(Identity, IdentityLen+1),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.id.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error kind: %+v", err)
			}
		})
	}
}

func TestIdentityString(t *testing.T) {
	id := Identity{0xab, 0xcd, 0xef, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0xff}
	s := id.String()
	if len(s) != 2*IdentityLen {
		t.Fatalf("want %d characters, got %d", 2*IdentityLen, len(s))
	}
	if s != strings.ToLower(s) {
		t.Fatalf("identity string must be lowercase hex: %q", s)
	}
	if !strings.HasPrefix(s, "abcdef") {
		t.Fatalf("unexpected encoding: %q", s)
	}
}

func TestCodeString(t *testing.T) {
	known := []Code{
		CodeSuccess, CodeWrongAccount, CodeTooEarly, CodeNotApproved,
		CodeDataRead, CodeHostCall, CodeBadConfig, CodeAlreadyApproved,
		CodeCooldown,
	}
	for _, c := range known {
		if c.String() == "unknown" {
			t.Fatalf("code %d must have a name", c)
		}
	}
	if got := Code(-99).String(); got != "unknown" {
		t.Fatalf("want unknown, got %q", got)
	}
}
