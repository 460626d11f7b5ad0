package record

import (
	"encoding/hex"

	"github.com/iov-one/quorum/errors"
)

// EncodeHex writes the lowercase hex form of src into dst and returns the
// number of bytes written. It fails when dst is smaller than twice the
// input length, leaving dst untouched.
func EncodeHex(dst, src []byte) (int, error) {
	if len(dst) < hex.EncodedLen(len(src)) {
		return 0, errors.Wrapf(errors.ErrInput, "destination too small: %d bytes for %d input bytes", len(dst), len(src))
	}
	return hex.Encode(dst, src), nil
}

// DecodeHex decodes hex encoded src into dst and returns the number of
// bytes written. Odd length input and any non-hex byte are rejected before
// anything is written, so a failed decode leaves dst untouched.
func DecodeHex(dst, src []byte) (int, error) {
	if len(src)%2 != 0 {
		return 0, errors.Wrapf(errors.ErrInput, "odd length hex input: %d bytes", len(src))
	}
	if len(dst) < hex.DecodedLen(len(src)) {
		return 0, errors.Wrapf(errors.ErrInput, "destination too small: %d bytes for %d input bytes", len(dst), len(src))
	}
	for _, c := range src {
		if !isHexChar(c) {
			return 0, errors.Wrapf(errors.ErrInput, "invalid hex byte: %q", c)
		}
	}
	n, err := hex.Decode(dst, src)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInput, "invalid hex: %s", err)
	}
	return n, nil
}

func isHexChar(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
