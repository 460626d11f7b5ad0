package quorum

// Code is the signed outcome returned to the host by every entry point.
// Positive permits the action (funds released or mutation applied),
// non-positive denies it with a specific reason.
type Code int32

const (
	// CodeSuccess permits the action.
	CodeSuccess Code = 1

	// CodeWrongAccount denies a caller that is not a registered notary.
	CodeWrongAccount Code = -1

	// CodeTooEarly is reserved. The host enforces the release-time
	// constraint before invoking the core, so no code path produces it.
	CodeTooEarly Code = -2

	// CodeNotApproved denies a release attempt below the threshold.
	CodeNotApproved Code = -3

	// CodeDataRead reports a failure reading or writing the record.
	CodeDataRead Code = -4

	// CodeHostCall reports a failure of any other host accessor.
	CodeHostCall Code = -5

	// CodeBadConfig denies on a malformed roster or threshold field.
	CodeBadConfig Code = -6

	// CodeAlreadyApproved denies a second approval for the same slot.
	CodeAlreadyApproved Code = -7

	// CodeCooldown is reserved. A cooldown window constant is defined in
	// x/notary but no rate-limiting check reads it yet.
	CodeCooldown Code = -8
)

// String returns a short human readable tag for the code. It is meant for
// traces and tooling, not for the record; the audit vocabulary written to
// last_result is owned by x/notary.
func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeWrongAccount:
		return "wrong account"
	case CodeTooEarly:
		return "too early"
	case CodeNotApproved:
		return "not approved"
	case CodeDataRead:
		return "data read"
	case CodeHostCall:
		return "host call"
	case CodeBadConfig:
		return "bad config"
	case CodeAlreadyApproved:
		return "already approved"
	case CodeCooldown:
		return "cooldown"
	}
	return "unknown"
}
