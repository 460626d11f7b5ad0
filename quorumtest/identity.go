package quorumtest

import (
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/iov-one/quorum"
)

// NewIdentity returns the identity of a freshly generated ed25519 key. This
// mirrors how the host derives account identities from the public keys it
// verified, so tests exercise realistically shaped callers.
func NewIdentity() quorum.Identity {
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return quorum.NewIdentity(pub)
}

// ParseIdentity takes an identity in its lowercase hex record form and
// returns the binary representation. This function is a test helper.
func ParseIdentity(t testing.TB, encoded string) quorum.Identity {
	t.Helper()

	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot parse %q identity: %s", encoded, err)
	}
	id := quorum.Identity(raw)
	if err := id.Validate(); err != nil {
		t.Fatalf("invalid identity %q: %s", encoded, err)
	}
	return id
}
