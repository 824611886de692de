package constant

// ErrorMessages maps codes to API messages.
var ErrorMessages = map[int]string{
	CodeSuccess:            "success",
	CodeSystemError:        "system error",
	CodeDatabaseError:      "database error",
	CodeRedisError:         "cache error",
	CodeInternalError:      "internal error",
	CodeServiceUnavailable: "service temporarily unavailable",
	CodeTimeout:            "request timed out",

	CodeInvalidParams: "invalid parameters",
	CodeMissingParams: "missing required parameters",

	CodeUnauthorized:   "unauthorized",
	CodeSignatureError: "signature verification failed",

	CodeOrderNotFound:      "order not found",
	CodeOrderAlreadyExist:  "order already exists",
	CodeOrderStatusInvalid: "order status invalid for this operation",
	CodeOrderAmountInvalid: "order amount invalid",

	CodeFeeValidationFailed: "fee calculation rejected",
	CodeFeePolicyInvalid:    "fee policy invalid",

	CodePayoutNotFound:         "payout not found",
	CodePayoutStatusInvalid:    "payout not in required status",
	CodePayoutNotInBatch:       "payout does not belong to batch",
	CodePayoutAlreadyConfirmed: "payout already confirmed",

	CodeBatchNotFound: "batch not found",
	CodeBatchEmpty:    "no eligible payouts",

	CodeSellerNotFound:    "seller not found",
	CodeSellerNoBank:      "seller has no bank details on file",
	CodeSellerDisabled:    "seller account disabled",
	CodeSellerBalanceLow:  "seller balance insufficient",
	CodeSellerBankInvalid: "seller bank details invalid",
}
