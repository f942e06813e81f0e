package enum

// PaymentKind distinguishes a partial payment from a full settlement
type PaymentKind string

const (
	PaymentKindPartial PaymentKind = "partial"
	PaymentKindFull    PaymentKind = "full"
)

// RejectionReason explains why a payment attempt was refused
type RejectionReason string

const (
	RejectionNone              RejectionReason = ""
	RejectionNoFundsTendered   RejectionReason = "no-funds-tendered"
	RejectionAlreadySettled    RejectionReason = "already-settled"
	RejectionInsufficientFunds RejectionReason = "insufficient-funds"
)
