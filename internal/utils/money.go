package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MajorUnits renders cents as major currency units with two decimals.
// Display conversion only; nothing internal ever leaves integer cents.
func MajorUnits(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// MaskAccountNumber keeps the last 4 digits.
func MaskAccountNumber(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return accountNumber
	}
	return strings.Repeat("*", len(accountNumber)-4) + accountNumber[len(accountNumber)-4:]
}

// PayoutReference derives the bank-statement reference from the payout id
// alone, so re-exports of the same batch are byte-stable.
func PayoutReference(payoutID uint64) string {
	return "PO" + strconv.FormatUint(payoutID, 10)
}
