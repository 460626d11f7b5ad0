package notary

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Handler sequences the decision logic for the entry points the host
// invokes. It holds no state of its own; the record read at the start of a
// call is the only state, and it is written back at most once per call.
type Handler struct {
	host quorum.Host
}

// NewHandler returns a handler bound to the given host.
func NewHandler(host quorum.Host) Handler {
	return Handler{host: host}
}

// Finish evaluates whether the escrowed funds may be released: the caller
// must resolve to a registered notary and the approval counter must have
// reached the threshold. Every attempt that gets as far as reading the
// record and the transaction sequence stamps the audit fields with its
// outcome, success and failure alike.
func (h Handler) Finish() quorum.Code {
	rec, err := h.host.ReadRecord()
	if err != nil {
		h.host.Trace("!!! failed to read escrow record")
		return quorum.CodeDataRead
	}
	seq, err := h.host.TransactionSequence()
	if err != nil {
		h.host.Trace("!!! failed to read transaction sequence")
		return quorum.CodeHostCall
	}

	h.host.Trace(">>> checking condition 1: caller is a registered notary")
	caller, err := h.host.CallerIdentity()
	if err != nil {
		h.host.Trace("!!! failed to read caller identity")
		return h.deny(rec, quorum.CodeHostCall, seq)
	}
	if _, err := ResolveNotary(rec, caller); err != nil {
		h.host.Trace("!!! caller not authorized")
		return h.deny(rec, outcome(err), seq)
	}
	h.host.Trace("    OK caller resolved to a notary slot")

	h.host.Trace(">>> checking condition 2: release-time constraint")
	if _, present, err := h.host.ReleaseTimeConstraint(); err != nil {
		h.host.Trace("!!! failed to read release-time constraint")
		return h.deny(rec, quorum.CodeHostCall, seq)
	} else if present {
		// The host refuses to invoke finish before a configured
		// release time, so reaching this point means the constraint
		// already passed. The check is audit-only and CodeTooEarly
		// stays reserved.
		h.host.Trace("    OK release time already enforced by the host")
	} else {
		h.host.Trace("    OK no release-time constraint configured")
	}

	h.host.Trace(">>> checking condition 3: approval threshold")
	if err := ThresholdMet(rec); err != nil {
		h.host.Trace("!!! approval threshold not met")
		return h.deny(rec, outcome(err), seq)
	}
	h.host.Trace("=== all conditions met ===")

	if err := h.host.WriteRecord(Stamp(rec, quorum.CodeSuccess, seq)); err != nil {
		h.host.Trace("!!! failed to persist audit stamp")
		return quorum.CodeDataRead
	}
	return quorum.CodeSuccess
}

// SetApproval records one approval for the calling identity's notary slot.
// Approval calls do not stamp the audit fields; a failed call leaves the
// record byte-for-byte unchanged.
func (h Handler) SetApproval() quorum.Code {
	h.host.Trace(">>> setting approval")
	rec, err := h.host.ReadRecord()
	if err != nil {
		h.host.Trace("!!! failed to read escrow record")
		return quorum.CodeDataRead
	}
	seq, err := h.host.TransactionSequence()
	if err != nil {
		h.host.Trace("!!! failed to read transaction sequence")
		return quorum.CodeHostCall
	}
	caller, err := h.host.CallerIdentity()
	if err != nil {
		h.host.Trace("!!! failed to read caller identity")
		return quorum.CodeHostCall
	}

	idx, err := ResolveNotary(rec, caller)
	if err != nil {
		h.host.Trace("!!! caller not authorized")
		return outcome(err)
	}

	next, err := Approve(rec, idx, caller, seq)
	if err != nil {
		h.host.Trace("!!! approval rejected")
		return outcome(err)
	}
	if err := h.host.WriteRecord(next); err != nil {
		h.host.Trace("!!! failed to persist approval")
		return quorum.CodeDataRead
	}
	h.host.Trace("    OK approval set")
	return quorum.CodeSuccess
}

// RevokeApproval clears the approval of the calling identity's notary slot.
// Revoking an unapproved slot still succeeds and rewrites the record.
func (h Handler) RevokeApproval() quorum.Code {
	h.host.Trace(">>> revoking approval")
	rec, err := h.host.ReadRecord()
	if err != nil {
		h.host.Trace("!!! failed to read escrow record")
		return quorum.CodeDataRead
	}
	caller, err := h.host.CallerIdentity()
	if err != nil {
		h.host.Trace("!!! failed to read caller identity")
		return quorum.CodeHostCall
	}

	idx, err := ResolveNotary(rec, caller)
	if err != nil {
		h.host.Trace("!!! caller not authorized")
		return outcome(err)
	}

	if err := h.host.WriteRecord(Revoke(rec, idx)); err != nil {
		h.host.Trace("!!! failed to persist revocation")
		return quorum.CodeDataRead
	}
	h.host.Trace("    OK approval revoked")
	return quorum.CodeSuccess
}

// deny stamps the record with a failed outcome, persists it and returns the
// code. A failed persist is traced but cannot change the outcome: the
// attempt was already denied.
func (h Handler) deny(rec []byte, code quorum.Code, seq uint32) quorum.Code {
	if err := h.host.WriteRecord(Stamp(rec, code, seq)); err != nil {
		h.host.Trace("!!! failed to persist audit stamp")
	}
	return code
}

func outcome(err error) quorum.Code {
	return quorum.Code(errors.OutcomeCode(err))
}
