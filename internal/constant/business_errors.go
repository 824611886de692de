package constant

// Business-level codes (2xxx)

// Order codes
const (
	CodeOrderNotFound      = 2100
	CodeOrderAlreadyExist  = 2101
	CodeOrderStatusInvalid = 2102
	CodeOrderAmountInvalid = 2103
)

// Fee codes
const (
	CodeFeeValidationFailed = 2200 // base amount below minimum or bad enum
	CodeFeePolicyInvalid    = 2201
)

// Payout codes
const (
	CodePayoutNotFound         = 2300
	CodePayoutStatusInvalid    = 2301 // not in the state the transition requires
	CodePayoutNotInBatch       = 2302
	CodePayoutAlreadyConfirmed = 2303
)

// Batch codes
const (
	CodeBatchNotFound = 2400
	CodeBatchEmpty    = 2401 // nothing eligible, normal outcome
)

// Seller codes
const (
	CodeSellerNotFound    = 2500
	CodeSellerNoBank      = 2501
	CodeSellerDisabled    = 2502
	CodeSellerBalanceLow  = 2503
	CodeSellerBankInvalid = 2504
)
