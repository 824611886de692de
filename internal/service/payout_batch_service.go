package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"marketplace-payout-api/internal/constant"
	"marketplace-payout-api/internal/dao"
	"marketplace-payout-api/internal/dto"
	"marketplace-payout-api/internal/idgen"
	"marketplace-payout-api/internal/logger"
	"marketplace-payout-api/internal/model"
	"marketplace-payout-api/internal/mq"
	"marketplace-payout-api/internal/notify"
	"marketplace-payout-api/internal/utils"
)

// PayoutBatchService drives the payout state machine:
//
//	PENDING --claim--> PROCESSING --confirm--> PAID
//	                   PROCESSING --fail-----> FAILED
//
// Transitions are guarded by conditional updates in the store, so every
// operation is safe to retry and concurrent callers cannot double-claim or
// double-confirm a row.
type PayoutBatchService struct {
	payouts    PayoutStore
	sellers    SellerStore
	policy     PolicyProvider
	newBatchID func() uint64
	now        func() time.Time
}

func NewPayoutBatchService() *PayoutBatchService {
	return &PayoutBatchService{
		payouts:    dao.NewPayoutDao(),
		sellers:    dao.NewSellerDao(),
		policy:     NewFeeService(),
		newBatchID: func() uint64 { return idgen.NewFrom("batch") },
		now:        time.Now,
	}
}

// NewPayoutBatchServiceWith wires explicit collaborators.
func NewPayoutBatchServiceWith(payouts PayoutStore, sellers SellerStore, policy PolicyProvider, newBatchID func() uint64, now func() time.Time) *PayoutBatchService {
	return &PayoutBatchService{
		payouts:    payouts,
		sellers:    sellers,
		policy:     policy,
		newBatchID: newBatchID,
		now:        now,
	}
}

// CreateBatch claims every eligible PENDING payout into a fresh batch.
// Candidates without bank details are skipped and stay PENDING. Returns
// (nil, nil) when nothing survives - a normal empty run, not an error.
func (s *PayoutBatchService) CreateBatch(ctx context.Context) (*dto.PayoutBatchVo, error) {
	log := logger.Payout()
	policy := s.policy.ActivePolicy(ctx)
	now := s.now()

	candidates, err := s.payouts.FindEligible(now, policy.PayoutMin)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	batchID := s.newBatchID()
	batch := &dto.PayoutBatchVo{BatchID: batchID, CreatedAt: now}

	for _, p := range candidates {
		seller, err := s.sellers.GetSeller(p.SellerID)
		if err != nil || seller == nil {
			log.Warnf("batch %d: payout %d skipped, seller %d unresolved: %v", batchID, p.PayoutID, p.SellerID, err)
			batch.Skipped = append(batch.Skipped, p.PayoutID)
			continue
		}
		bank, err := s.sellers.DefaultBankAccount(p.SellerID)
		if err != nil {
			log.Warnf("batch %d: payout %d skipped, bank lookup failed: %v", batchID, p.PayoutID, err)
			batch.Skipped = append(batch.Skipped, p.PayoutID)
			continue
		}
		if bank == nil {
			// Skip, don't fail: the seller can still add bank details and be
			// picked up by a later run.
			log.Infof("batch %d: payout %d skipped, seller %d has no bank details", batchID, p.PayoutID, p.SellerID)
			batch.Skipped = append(batch.Skipped, p.PayoutID)
			continue
		}

		claimed, err := s.payouts.ClaimPending(p.PayoutID, batchID)
		if err != nil {
			log.Errorf("batch %d: claim of payout %d failed: %v", batchID, p.PayoutID, err)
			continue
		}
		if !claimed {
			// Lost the race to a concurrent batch run.
			continue
		}

		batch.Items = append(batch.Items, dto.PayoutBatchItemVo{
			PayoutID:            p.PayoutID,
			SellerID:            p.SellerID,
			SellerEmail:         seller.Email,
			SellerName:          seller.Name,
			Amount:              p.Amount,
			Currency:            p.Currency,
			BankName:            bank.BankName,
			AccountNumber:       bank.AccountNumber,
			AccountNumberMasked: utils.MaskAccountNumber(bank.AccountNumber),
			BranchCode:          bank.BranchCode,
			AccountHolder:       bank.AccountHolder,
			AccountType:         bank.AccountType,
			Reference:           utils.PayoutReference(p.PayoutID),
		})
		batch.TotalAmount += p.Amount
	}

	if len(batch.Items) == 0 {
		return nil, nil
	}

	log.Infof("batch %d created: %d items, %d skipped, total %d", batchID, len(batch.Items), len(batch.Skipped), batch.TotalAmount)
	mq.PublishBatchCreated(mq.BatchCreatedEvent{
		BatchID:   batchID,
		ItemCount: len(batch.Items),
		Total:     batch.TotalAmount,
		CreatedAt: now.Unix(),
	})
	return batch, nil
}

// ConfirmBatch applies bank confirmations item by item. Each confirmation
// succeeds only against a PROCESSING member of the named batch; anything
// else (already PAID, wrong batch, unknown id) is reported per item and the
// rest of the list still processes. Replaying a confirmation list is safe:
// the conditional update fires at most once, so the seller's pending balance
// decrements exactly once per payout.
func (s *PayoutBatchService) ConfirmBatch(ctx context.Context, batchID uint64, confirmations []dto.PayoutConfirmation) (dto.ConfirmBatchResult, error) {
	log := logger.Payout()
	result := dto.ConfirmBatchResult{BatchID: batchID}
	now := s.now()

	for _, c := range confirmations {
		p, err := s.payouts.GetByID(c.PayoutID)
		if err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, dto.BatchItemError{
				PayoutID: c.PayoutID, Code: constant.CodeDatabaseError, Reason: err.Error(),
			})
			continue
		}
		if p == nil {
			result.FailedCount++
			result.Errors = append(result.Errors, dto.BatchItemError{
				PayoutID: c.PayoutID, Code: constant.CodePayoutNotFound, Reason: "payout not found",
			})
			continue
		}

		ok, err := s.payouts.ConfirmProcessing(c.PayoutID, batchID, c.ExternalRef, now)
		if err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, dto.BatchItemError{
				PayoutID: c.PayoutID, Code: constant.CodeDatabaseError, Reason: err.Error(),
			})
			continue
		}
		if !ok {
			// Re-read before classifying: a concurrent confirm may have
			// transitioned the row between the read above and the CAS.
			if cur, rerr := s.payouts.GetByID(c.PayoutID); rerr == nil && cur != nil {
				p = cur
			}
			code := constant.CodePayoutStatusInvalid
			reason := "payout not PROCESSING for batch"
			if p.Status == model.PayoutStatusPaid {
				code = constant.CodePayoutAlreadyConfirmed
				reason = "payout already confirmed"
			} else if p.BatchID == nil || *p.BatchID != batchID {
				code = constant.CodePayoutNotInBatch
				reason = "payout does not belong to batch"
			}
			result.FailedCount++
			result.Errors = append(result.Errors, dto.BatchItemError{PayoutID: c.PayoutID, Code: code, Reason: reason})
			continue
		}

		// The CAS above fired exactly once for this payout, so the ledger
		// decrement cannot be replayed.
		if err := s.sellers.AdjustBalance(p.SellerID, 0, -p.Amount); err != nil {
			log.Errorf("batch %d: pending balance decrement for seller %d failed: %v", batchID, p.SellerID, err)
		}
		result.ConfirmedCount++

		mq.PublishPayoutPaid(mq.PayoutStatusEvent{
			PayoutID:    p.PayoutID,
			BatchID:     batchID,
			SellerID:    p.SellerID,
			Amount:      p.Amount,
			Currency:    p.Currency,
			ExternalRef: c.ExternalRef,
			At:          now.Unix(),
		})
		mq.PublishEmailNotification(mq.EmailNotification{
			SellerID: p.SellerID,
			Template: "payout_paid",
			Subject:  "Your payout has been processed",
			Ref:      utils.PayoutReference(p.PayoutID),
		})
	}

	log.Infof("batch %d confirm: %d ok, %d failed", batchID, result.ConfirmedCount, result.FailedCount)
	return result, nil
}

// FailBatch marks PROCESSING members of the batch FAILED. When payoutIDs is
// given the target set is the intersection with PROCESSING members; ids in
// any other state are silently excluded. Funds are not returned to the
// seller's available balance - they stay pending until the payout is
// requeued or handled manually.
func (s *PayoutBatchService) FailBatch(ctx context.Context, batchID uint64, reason string, payoutIDs []uint64) (dto.FailBatchResult, error) {
	result := dto.FailBatchResult{BatchID: batchID}
	now := s.now()

	members, err := s.payouts.ListByBatch(batchID)
	if err != nil {
		return result, err
	}
	if len(members) == 0 {
		return result, constant.NewError(constant.CodeBatchNotFound)
	}

	restrict := map[uint64]bool{}
	for _, id := range payoutIDs {
		restrict[id] = true
	}

	for _, p := range members {
		if p.Status != model.PayoutStatusProcessing {
			continue
		}
		if len(restrict) > 0 && !restrict[p.PayoutID] {
			continue
		}
		ok, err := s.payouts.FailProcessing(p.PayoutID, batchID, reason, now)
		if err != nil {
			logger.Payout().Errorf("batch %d: fail of payout %d errored: %v", batchID, p.PayoutID, err)
			continue
		}
		if !ok {
			continue
		}
		result.FailedCount++
		result.PayoutIDs = append(result.PayoutIDs, p.PayoutID)

		mq.PublishPayoutFailed(mq.PayoutStatusEvent{
			PayoutID: p.PayoutID,
			BatchID:  batchID,
			SellerID: p.SellerID,
			Amount:   p.Amount,
			Currency: p.Currency,
			Reason:   reason,
			At:       now.Unix(),
		})
	}

	logger.Payout().Warnf("batch %d failed: %d items, reason=%s", batchID, result.FailedCount, reason)
	if result.FailedCount > 0 {
		if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
			notify.Async(chatID, fmt.Sprintf("*Payout batch %d failed*\n%d items marked FAILED\nreason: %s", batchID, result.FailedCount, reason))
		}
	}
	return result, nil
}

// BatchStatus derives the aggregate status from member payout statuses.
// Returns nil when no payout references the batch id - a batch exists only
// through its membership.
func (s *PayoutBatchService) BatchStatus(ctx context.Context, batchID uint64) (*dto.BatchStatusVo, error) {
	members, err := s.payouts.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	vo := &dto.BatchStatusVo{BatchID: batchID, Total: len(members)}
	for _, p := range members {
		vo.TotalAmount += p.Amount
		switch p.Status {
		case model.PayoutStatusProcessing:
			vo.ProcessingCount++
		case model.PayoutStatusPaid:
			vo.PaidCount++
		case model.PayoutStatusFailed:
			vo.FailedCount++
		}
	}
	switch {
	case vo.PaidCount == vo.Total:
		vo.Status = model.BatchStatusConfirmed
	case vo.FailedCount == vo.Total:
		vo.Status = model.BatchStatusFailed
	case vo.ProcessingCount == vo.Total:
		vo.Status = model.BatchStatusProcessing
	default:
		vo.Status = model.BatchStatusPartiallyConfirmed
	}
	return vo, nil
}

// ExportBatch rebuilds the bank-file view of an existing batch. Bank details
// are re-resolved; the per-item reference depends only on the payout id so
// re-exports are stable.
func (s *PayoutBatchService) ExportBatch(ctx context.Context, batchID uint64) (*dto.PayoutBatchVo, error) {
	members, err := s.payouts.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	batch := &dto.PayoutBatchVo{BatchID: batchID, CreatedAt: s.now()}
	for _, p := range members {
		item := dto.PayoutBatchItemVo{
			PayoutID:  p.PayoutID,
			SellerID:  p.SellerID,
			Amount:    p.Amount,
			Currency:  p.Currency,
			Reference: utils.PayoutReference(p.PayoutID),
		}
		if seller, err := s.sellers.GetSeller(p.SellerID); err == nil && seller != nil {
			item.SellerEmail = seller.Email
			item.SellerName = seller.Name
		}
		if bank, err := s.sellers.DefaultBankAccount(p.SellerID); err == nil && bank != nil {
			item.BankName = bank.BankName
			item.AccountNumber = bank.AccountNumber
			item.AccountNumberMasked = utils.MaskAccountNumber(bank.AccountNumber)
			item.BranchCode = bank.BranchCode
			item.AccountHolder = bank.AccountHolder
			item.AccountType = bank.AccountType
		}
		batch.Items = append(batch.Items, item)
		batch.TotalAmount += p.Amount
	}
	return batch, nil
}

// RequeueFailed returns a FAILED payout to the PENDING pool. Explicit admin
// action; createBatch never resurrects failed items on its own.
func (s *PayoutBatchService) RequeueFailed(ctx context.Context, payoutID uint64) error {
	ok, err := s.payouts.RequeueFailed(payoutID)
	if err != nil {
		return err
	}
	if !ok {
		return constant.NewError(constant.CodePayoutStatusInvalid)
	}
	logger.Payout().Infof("payout %d requeued to PENDING", payoutID)
	return nil
}
