package dto

import "time"

// PayoutBatchItemVo is one claimed payout with its EFT destination.
// AccountNumber is the full number (the batch doubles as the bank-processing
// file); AccountNumberMasked is for any human-facing view.
type PayoutBatchItemVo struct {
	PayoutID            uint64 `json:"payoutId"`
	SellerID            uint64 `json:"sellerId"`
	SellerEmail         string `json:"sellerEmail"`
	SellerName          string `json:"sellerName"`
	Amount              int64  `json:"amount"` // cents
	Currency            string `json:"currency"`
	BankName            string `json:"bankName"`
	AccountNumber       string `json:"accountNumber"`
	AccountNumberMasked string `json:"accountNumberMasked"`
	BranchCode          string `json:"branchCode"`
	AccountHolder       string `json:"accountHolder"`
	AccountType         string `json:"accountType"`
	Reference           string `json:"reference"`
}

// PayoutBatchVo is the result of claiming eligible payouts into one batch.
type PayoutBatchVo struct {
	BatchID     uint64              `json:"batchId"`
	CreatedAt   time.Time           `json:"createdAt"`
	TotalAmount int64               `json:"totalAmount"` // cents
	Items       []PayoutBatchItemVo `json:"items"`
	Skipped     []uint64            `json:"skipped,omitempty"` // left PENDING, no bank details
}

// PayoutConfirmation is one bank confirmation line.
type PayoutConfirmation struct {
	PayoutID    uint64 `json:"payoutId" binding:"required"`
	ExternalRef string `json:"externalRef" binding:"required"`
}

type ConfirmBatchReq struct {
	Confirmations []PayoutConfirmation `json:"confirmations" binding:"required,min=1,dive"`
}

// BatchItemError is a per-item precondition failure inside a batch call.
type BatchItemError struct {
	PayoutID uint64 `json:"payoutId"`
	Code     int    `json:"code"`
	Reason   string `json:"reason"`
}

// ConfirmBatchResult reports partial success; the call never aborts on the
// first bad item.
type ConfirmBatchResult struct {
	BatchID        uint64           `json:"batchId"`
	ConfirmedCount int              `json:"confirmedCount"`
	FailedCount    int              `json:"failedCount"`
	Errors         []BatchItemError `json:"errors,omitempty"`
}

type FailBatchReq struct {
	Reason    string   `json:"reason" binding:"required"`
	PayoutIDs []uint64 `json:"payoutIds"` // optional, restricts the target set
}

type FailBatchResult struct {
	BatchID     uint64   `json:"batchId"`
	FailedCount int      `json:"failedCount"`
	PayoutIDs   []uint64 `json:"payoutIds"`
}

// BatchStatusVo is the derived aggregate over member payout statuses.
type BatchStatusVo struct {
	BatchID         uint64 `json:"batchId"`
	Status          string `json:"status"`
	Total           int    `json:"total"`
	ProcessingCount int    `json:"processingCount"`
	PaidCount       int    `json:"paidCount"`
	FailedCount     int    `json:"failedCount"`
	TotalAmount     int64  `json:"totalAmount"` // cents
}
