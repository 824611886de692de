// Package export renders a payout batch as the bank-processing CSV file.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"marketplace-payout-api/internal/dto"
	"marketplace-payout-api/internal/utils"
)

var header = []string{
	"payoutId", "sellerEmail", "sellerName", "amount",
	"bankName", "accountNumber", "branchCode", "accountHolder", "accountType",
	"reference",
}

// WriteBatchCSV writes one row per payout item. Amounts are major units with
// two decimals; account numbers are unmasked because the file goes to the
// bank. The reference column is stable across re-exports of the same batch.
func WriteBatchCSV(w io.Writer, batch *dto.PayoutBatchVo) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, item := range batch.Items {
		row := []string{
			strconv.FormatUint(item.PayoutID, 10),
			item.SellerEmail,
			item.SellerName,
			utils.MajorUnits(item.Amount),
			item.BankName,
			item.AccountNumber,
			item.BranchCode,
			item.AccountHolder,
			item.AccountType,
			item.Reference,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
