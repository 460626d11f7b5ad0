package notary

import (
	"strconv"
)

const (
	// MaxNotaries is the maximum number of registered approvers. Slot
	// indices stay single-digit, which keeps every per-slot key a fixed
	// width.
	MaxNotaries = 5

	// KeyNotaryCount holds the number of registered approvers, a single
	// decimal digit in 1..MaxNotaries.
	KeyNotaryCount = "notary_count"

	// KeyThreshold holds the number of approvals required to release,
	// a single decimal digit. It is deliberately never validated against
	// notary_count; a threshold above the roster size is representable
	// and simply unreachable.
	KeyThreshold = "threshold"

	// KeyApprovalCount holds the running count of approved notaries.
	// It is maintained incrementally by Approve and Revoke and trusted
	// on read, never recomputed from the approval bits.
	KeyApprovalCount = "approval_count"

	// KeyLastResult and KeyLastAttemptSeq hold the audit stamp of the
	// most recent finish attempt.
	KeyLastResult     = "last_result"
	KeyLastAttemptSeq = "last_attempt_seq"
)

// CooldownWindow is the minimum number of ledger sequences between finish
// attempts. It is defined but not yet enforced: nothing compares it against
// last_attempt_seq, and CodeCooldown stays reserved until that check lands.
const CooldownWindow = 16

const (
	approvalGranted = "1"
	approvalRevoked = "0"
)

// NotaryKey returns the key of the i-th approver identity.
func NotaryKey(i int) string {
	return "notary_" + strconv.Itoa(i)
}

// ApprovalKey returns the key of the i-th approval bit.
func ApprovalKey(i int) string {
	return "approval_" + strconv.Itoa(i)
}

// ApproverKey returns the audit key recording which identity approved
// slot i.
func ApproverKey(i int) string {
	return "approver_" + strconv.Itoa(i)
}

// ApproveSeqKey returns the audit key recording the transaction sequence
// at which slot i was approved.
func ApproveSeqKey(i int) string {
	return "approve_seq_" + strconv.Itoa(i)
}
