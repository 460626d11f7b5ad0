package notary

import (
	"bytes"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/record"
)

// NotaryCount reads the size of the registered roster. A missing,
// non-digit, zero or above-maximum value makes the record unusable for
// authorization and fails with ErrBadConfig.
func NotaryCount(rec []byte) (int, error) {
	raw, ok := record.Lookup(rec, KeyNotaryCount)
	if !ok {
		return 0, errors.Wrap(errors.ErrBadConfig, "notary_count missing")
	}
	n, err := record.ParseDigit(raw)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrBadConfig, "notary_count malformed: %q", raw)
	}
	if n == 0 || n > MaxNotaries {
		return 0, errors.Wrapf(errors.ErrBadConfig, "notary_count %d out of range 1..%d", n, MaxNotaries)
	}
	return int(n), nil
}

// ResolveNotary maps the caller identity to its slot in the registered
// roster. The stored notary_<i> values are compared byte-for-byte against
// the lowercase hex form of the caller; the record's producer must use
// lowercase hex as well, there is no case normalization. First match wins.
// A caller matching no registered notary fails with ErrWrongAccount.
func ResolveNotary(rec []byte, caller quorum.Identity) (int, error) {
	count, err := NotaryCount(rec)
	if err != nil {
		return 0, err
	}
	if len(caller) != quorum.IdentityLen {
		return 0, errors.Wrapf(errors.ErrWrongAccount, "caller identity must be %d bytes, got %d", quorum.IdentityLen, len(caller))
	}

	var callerHex [2 * quorum.IdentityLen]byte
	if _, err := record.EncodeHex(callerHex[:], caller); err != nil {
		return 0, errors.Wrap(errors.ErrWrongAccount, "caller identity cannot be encoded")
	}

	for i := 0; i < count; i++ {
		stored, ok := record.Lookup(rec, NotaryKey(i))
		if !ok {
			continue
		}
		if bytes.Equal(stored, callerHex[:]) {
			return i, nil
		}
	}
	return 0, errors.Wrap(errors.ErrWrongAccount, "caller is not a registered notary")
}
