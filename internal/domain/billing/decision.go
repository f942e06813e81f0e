package billing

import "github.com/goapub/pos-api/internal/domain/enum"

// PartialRejection returns why a partial payment must be refused, or
// RejectionNone when it may be applied. A partial payment needs money on the
// counter and must leave something still owed against the discounted total.
func PartialRejection(q Quote) enum.RejectionReason {
	if !q.Tendered.IsPositive() {
		return enum.RejectionNoFundsTendered
	}
	if !q.Remaining.IsPositive() {
		return enum.RejectionAlreadySettled
	}
	return enum.RejectionNone
}

// FullRejection returns why a full settlement must be refused, or
// RejectionNone when tendered covers the discounted total.
func FullRejection(q Quote) enum.RejectionReason {
	if q.Tendered.LessThan(q.Final) {
		return enum.RejectionInsufficientFunds
	}
	return enum.RejectionNone
}
