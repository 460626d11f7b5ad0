package notary

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/record"
)

// Approved reports whether slot idx carries a granted approval bit. Only
// the exact value "1" counts; an absent or "0" entry does not.
func Approved(rec []byte, idx int) bool {
	v, ok := record.Lookup(rec, ApprovalKey(idx))
	return ok && string(v) == approvalGranted
}

// ApprovalCount returns the stored approval counter. The counter is a
// trusted field: it is maintained by Approve and Revoke and deliberately
// never recomputed from the approval bits, so external corruption that sets
// it independently of the bits goes undetected here. An absent or
// unparsable counter reads as zero.
func ApprovalCount(rec []byte) uint32 {
	raw, ok := record.Lookup(rec, KeyApprovalCount)
	if !ok {
		return 0
	}
	n, err := record.ParseUint32(raw)
	if err != nil {
		return 0
	}
	return n
}

// Approve records one approval for slot idx, attributed to caller at
// transaction sequence seq. A slot may hold at most one approval between an
// approve and its matching revoke: approving an already-approved slot fails
// with ErrAlreadyApproved and leaves the record untouched.
func Approve(rec []byte, idx int, caller quorum.Identity, seq uint32) ([]byte, error) {
	if Approved(rec, idx) {
		return nil, errors.Wrapf(errors.ErrAlreadyApproved, "notary %d", idx)
	}

	var callerHex [2 * quorum.IdentityLen]byte
	if len(caller) != quorum.IdentityLen {
		return nil, errors.Wrapf(errors.ErrWrongAccount, "approver identity must be %d bytes, got %d", quorum.IdentityLen, len(caller))
	}
	if _, err := record.EncodeHex(callerHex[:], caller); err != nil {
		return nil, errors.Wrap(errors.ErrWrongAccount, "approver identity cannot be encoded")
	}

	count := ApprovalCount(rec)

	var b record.Buffer
	b.CopyExcluding(rec, excludeSlotFields(idx))
	b.PutString(ApprovalKey(idx), approvalGranted)
	b.Put(KeyApprovalCount, record.FormatUint32(count+1))
	b.Put(ApproverKey(idx), callerHex[:])
	b.Put(ApproveSeqKey(idx), record.FormatUint32(seq))
	return b.Bytes(), nil
}

// Revoke clears the approval of slot idx. Revoking an unapproved slot is a
// harmless no-op on the counter but still rewrites the record, normalizing
// the bit to "0" and dropping the slot's audit fields. The counter never
// underflows past zero.
func Revoke(rec []byte, idx int) []byte {
	count := ApprovalCount(rec)
	if Approved(rec, idx) && count > 0 {
		count--
	}

	var b record.Buffer
	b.CopyExcluding(rec, excludeSlotFields(idx))
	b.PutString(ApprovalKey(idx), approvalRevoked)
	b.Put(KeyApprovalCount, record.FormatUint32(count))
	return b.Bytes()
}

// excludeSlotFields matches the four field families a ledger mutation of
// slot idx replaces: the slot's approval bit, the shared counter and the
// slot's two audit fields.
func excludeSlotFields(idx int) func(key []byte) bool {
	approval := ApprovalKey(idx)
	approver := ApproverKey(idx)
	approveSeq := ApproveSeqKey(idx)
	return func(key []byte) bool {
		switch string(key) {
		case approval, approver, approveSeq, KeyApprovalCount:
			return true
		}
		return false
	}
}
