package notary

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/record"
)

// Result tags written to last_result. The vocabulary is closed; any outcome
// code outside it stamps as "unknown". Note there is no tag for
// CodeAlreadyApproved: approval calls never stamp, so it cannot reach a
// stamp through any current path.
const (
	tagApproved     = "approved"
	tagWrongAccount = "wrong_account"
	tagTooEarly     = "too_early"
	tagNotApproved  = "not_approved"
	tagDataRead     = "data_read_err"
	tagHostCall     = "host_call_err"
	tagBadConfig    = "bad_config"
	tagCooldown     = "cooldown"
	tagUnknown      = "unknown"
)

func resultTag(code quorum.Code) string {
	switch code {
	case quorum.CodeSuccess:
		return tagApproved
	case quorum.CodeWrongAccount:
		return tagWrongAccount
	case quorum.CodeTooEarly:
		return tagTooEarly
	case quorum.CodeNotApproved:
		return tagNotApproved
	case quorum.CodeDataRead:
		return tagDataRead
	case quorum.CodeHostCall:
		return tagHostCall
	case quorum.CodeBadConfig:
		return tagBadConfig
	case quorum.CodeCooldown:
		return tagCooldown
	}
	return tagUnknown
}

// Stamp records the outcome and transaction sequence of a decision attempt
// in the audit fields. Any prior stamp is overwritten; only the most recent
// attempt is retained.
func Stamp(rec []byte, code quorum.Code, seq uint32) []byte {
	var b record.Buffer
	b.CopyExcluding(rec, func(key []byte) bool {
		switch string(key) {
		case KeyLastResult, KeyLastAttemptSeq:
			return true
		}
		return false
	})
	b.PutString(KeyLastResult, resultTag(code))
	b.Put(KeyLastAttemptSeq, record.FormatUint32(seq))
	return b.Bytes()
}
