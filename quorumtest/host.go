package quorumtest

import (
	"github.com/iov-one/quorum"
)

// Host is a configurable quorum.Host implementation for tests. The zero
// value is usable: every accessor succeeds with the zero value of its
// field. Set an *Err field to make the matching accessor fail.
type Host struct {
	Caller    quorum.Identity
	CallerErr error

	Sequence    uint32
	SequenceErr error

	ReleaseTime    int64
	HasReleaseTime bool
	ReleaseTimeErr error

	Record   []byte
	ReadErr  error
	WriteErr error

	// Writes counts successful WriteRecord calls, so a test can assert
	// the write-at-most-once-per-call discipline.
	Writes int

	// Traces collects every Trace message in order.
	Traces []string
}

var _ quorum.Host = (*Host)(nil)

func (h *Host) CallerIdentity() (quorum.Identity, error) {
	if h.CallerErr != nil {
		return nil, h.CallerErr
	}
	return h.Caller, nil
}

func (h *Host) TransactionSequence() (uint32, error) {
	if h.SequenceErr != nil {
		return 0, h.SequenceErr
	}
	return h.Sequence, nil
}

func (h *Host) ReleaseTimeConstraint() (int64, bool, error) {
	if h.ReleaseTimeErr != nil {
		return 0, false, h.ReleaseTimeErr
	}
	return h.ReleaseTime, h.HasReleaseTime, nil
}

func (h *Host) ReadRecord() ([]byte, error) {
	if h.ReadErr != nil {
		return nil, h.ReadErr
	}
	return h.Record, nil
}

func (h *Host) WriteRecord(rec []byte) error {
	if h.WriteErr != nil {
		return h.WriteErr
	}
	h.Record = append([]byte(nil), rec...)
	h.Writes++
	return nil
}

func (h *Host) Trace(msg string) {
	h.Traces = append(h.Traces, msg)
}
