package notary

import (
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/record"
)

// Threshold reads the configured number of approvals required to release.
// It is read independently of notary_count and never validated against it.
func Threshold(rec []byte) (int, error) {
	raw, ok := record.Lookup(rec, KeyThreshold)
	if !ok {
		return 0, errors.Wrap(errors.ErrBadConfig, "threshold missing")
	}
	n, err := record.ParseDigit(raw)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrBadConfig, "threshold malformed: %q", raw)
	}
	return int(n), nil
}

// ThresholdMet returns nil when the stored approval counter has reached the
// configured threshold, ErrNotApproved when it has not and ErrBadConfig
// when the threshold field is missing or malformed.
//
// The evaluator trusts approval_count entirely: it inspects neither
// notary_count nor the individual approval bits. An absent or unparsable
// counter reads as zero, which fails closed.
func ThresholdMet(rec []byte) error {
	threshold, err := Threshold(rec)
	if err != nil {
		return err
	}

	count := 0
	if raw, ok := record.Lookup(rec, KeyApprovalCount); ok {
		if n, err := record.ParseDigit(raw); err == nil {
			count = int(n)
		}
	}

	if count < threshold {
		return errors.Wrapf(errors.ErrNotApproved, "%d of %d approvals", count, threshold)
	}
	return nil
}
