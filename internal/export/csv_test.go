package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"marketplace-payout-api/internal/dto"
)

func sampleBatch() *dto.PayoutBatchVo {
	return &dto.PayoutBatchVo{
		BatchID:     42,
		TotalAmount: 152550,
		Items: []dto.PayoutBatchItemVo{
			{
				PayoutID: 7001, SellerID: 1,
				SellerEmail: "a@example.com", SellerName: "Seller A",
				Amount: 120000, Currency: "ZAR",
				BankName: "First Bank", AccountNumber: "6201234567890",
				AccountNumberMasked: "*********7890",
				BranchCode:          "250655", AccountHolder: "Seller A", AccountType: "cheque",
				Reference: "PO7001",
			},
			{
				PayoutID: 7002, SellerID: 2,
				SellerEmail: "b@example.com", SellerName: "Seller B",
				Amount: 32550, Currency: "ZAR",
				BankName: "Second Bank", AccountNumber: "1109876543210",
				AccountNumberMasked: "*********3210",
				BranchCode:          "632005", AccountHolder: "Seller B", AccountType: "savings",
				Reference: "PO7002",
			},
		},
	}
}

func TestWriteBatchCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBatchCSV(&buf, sampleBatch()); err != nil {
		t.Fatalf("WriteBatchCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "payoutId" || rows[0][len(rows[0])-1] != "reference" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	for i, row := range rows[1:] {
		if len(row) != len(rows[0]) {
			t.Errorf("row %d has %d columns, header has %d", i, len(row), len(rows[0]))
		}
	}

	// amounts in major units with two decimals
	if rows[1][3] != "1200.00" {
		t.Errorf("amount column = %q, want 1200.00", rows[1][3])
	}
	if rows[2][3] != "325.50" {
		t.Errorf("amount column = %q, want 325.50", rows[2][3])
	}

	// the bank file carries the full account number, not the masked view
	if rows[1][5] != "6201234567890" {
		t.Errorf("account column = %q, want unmasked number", rows[1][5])
	}

	if rows[1][9] != "PO7001" || rows[2][9] != "PO7002" {
		t.Errorf("reference columns = %q, %q", rows[1][9], rows[2][9])
	}
}

func TestWriteBatchCSVStableAcrossRuns(t *testing.T) {
	var a, b bytes.Buffer
	batch := sampleBatch()
	if err := WriteBatchCSV(&a, batch); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteBatchCSV(&b, batch); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("re-export of the same batch must be byte-identical")
	}
}
