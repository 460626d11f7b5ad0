/*
Package notary implements the multi-party threshold decision logic of the
conditional escrow: resolving a caller to a registered notary slot,
recording and revoking approvals, evaluating the release threshold and
stamping the audit fields.

All state lives in the flat record defined by the record package. Every
mutation is a pure function from record bytes to new record bytes built on
the copy-and-filter rebuild primitive, so fields a mutation does not own,
including custom keys set by the record's creator, travel through
untouched. The Handler at the top sequences these functions for the three
entry points the host invokes and translates every failure into its wire
outcome code.
*/
package notary
