package service

import (
	"context"
	"time"

	"marketplace-payout-api/internal/fee"
	"marketplace-payout-api/internal/model"
)

// PayoutStore is the slice of persistence the batch manager needs. The gorm
// DAO satisfies it in production; tests use an in-memory fake with the same
// compare-and-set semantics.
type PayoutStore interface {
	Insert(p *model.Payout) error
	GetByID(payoutID uint64) (*model.Payout, error)
	FindEligible(now time.Time, minAmount int64) ([]model.Payout, error)
	ClaimPending(payoutID, batchID uint64) (bool, error)
	ConfirmProcessing(payoutID, batchID uint64, externalRef string, at time.Time) (bool, error)
	FailProcessing(payoutID, batchID uint64, reason string, at time.Time) (bool, error)
	ListByBatch(batchID uint64) ([]model.Payout, error)
	RequeueFailed(payoutID uint64) (bool, error)
}

// SellerStore resolves sellers and their bank details and applies ledger
// deltas atomically at the storage layer.
type SellerStore interface {
	GetSeller(sellerID uint64) (*model.SellerAccount, error)
	DefaultBankAccount(sellerID uint64) (*model.BankAccount, error)
	AdjustBalance(sellerID uint64, delta, deltaPending int64) error
}

// PolicyProvider yields the fee policy currently in force.
type PolicyProvider interface {
	ActivePolicy(ctx context.Context) fee.Policy
}
