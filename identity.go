package quorum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/iov-one/quorum/errors"
)

// IdentityLen is the length of all identities in bytes. The host hands the
// core binary identities of exactly this length and the record stores them
// as lowercase hex, so the serialized form is always 2*IdentityLen bytes.
const IdentityLen = 20

// Identity is the binary account identifier of a transaction participant.
// The host is responsible for verifying that the caller actually controls
// this identity (signature checks happen before the core is invoked).
type Identity []byte

// NewIdentity condenses arbitrary input into a valid Identity. It is the
// canonical way to derive an identity from a public key.
func NewIdentity(data []byte) Identity {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return Identity(h[:IdentityLen])
}

// Validate returns an error if the identity is not the expected length.
func (i Identity) Validate() error {
	if len(i) != IdentityLen {
		return errors.Wrapf(errors.ErrInput, "identity must be %d bytes, got %d", IdentityLen, len(i))
	}
	return nil
}

// Equals checks if two identities are the same.
func (i Identity) Equals(other Identity) bool {
	return bytes.Equal(i, other)
}

// String returns the lowercase hex form, matching the record serialization.
func (i Identity) String() string {
	return hex.EncodeToString(i)
}
