package record

import (
	"strconv"

	"github.com/iov-one/quorum/errors"
)

const maxUint32 = 1<<32 - 1

// ParseDigit parses exactly one ASCII digit. Empty, multi-byte and
// non-digit input is rejected.
func ParseDigit(raw []byte) (uint8, error) {
	if len(raw) != 1 {
		return 0, errors.Wrapf(errors.ErrInput, "want a single digit, got %d bytes", len(raw))
	}
	c := raw[0]
	if c < '0' || c > '9' {
		return 0, errors.Wrapf(errors.ErrInput, "not a digit: %q", c)
	}
	return c - '0', nil
}

// ParseUint32 parses one or more ASCII digits into an unsigned 32 bit
// value. It fails on empty input, on any non-digit byte and on overflow
// past the maximum representable value. It never wraps.
func ParseUint32(raw []byte) (uint32, error) {
	if len(raw) == 0 {
		return 0, errors.Wrap(errors.ErrInput, "empty input")
	}
	var n uint64
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, errors.Wrapf(errors.ErrInput, "not a digit: %q", c)
		}
		n = n*10 + uint64(c-'0')
		if n > maxUint32 {
			return 0, errors.Wrap(errors.ErrOverflow, "value exceeds 32 bits")
		}
	}
	return uint32(n), nil
}

// FormatUint32 renders v as ASCII digits with no leading zeros except the
// literal value zero.
func FormatUint32(v uint32) []byte {
	return strconv.AppendUint(nil, uint64(v), 10)
}
