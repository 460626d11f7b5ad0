package quorum

// Host is the ledger runtime boundary. The core reads every transaction and
// escrow field through this interface and writes the record back through it,
// exactly once per state-changing call.
//
// Implementations must be deterministic with respect to the evaluated
// transaction: every node validating the same transaction must observe the
// same values from every accessor. Trace is the only exception; it is a
// write-only diagnostic channel that must not influence execution.
type Host interface {
	// CallerIdentity returns the identity that signed the current
	// transaction. Signature verification already happened host-side.
	CallerIdentity() (Identity, error)

	// TransactionSequence returns the sequence number of the current
	// transaction within the ledger.
	TransactionSequence() (uint32, error)

	// ReleaseTimeConstraint returns the configured release time and
	// whether one is configured at all. When a constraint is present the
	// host has already refused to invoke the core before it passed.
	ReleaseTimeConstraint() (int64, bool, error)

	// ReadRecord returns the current escrow record bytes.
	ReadRecord() ([]byte, error)

	// WriteRecord replaces the escrow record atomically.
	WriteRecord(rec []byte) error

	// Trace emits a diagnostic line into the host's trace log.
	Trace(msg string)
}
