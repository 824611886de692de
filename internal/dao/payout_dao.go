package dao

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"marketplace-payout-api/internal/dal"
	"marketplace-payout-api/internal/model"
)

type PayoutDao struct {
	DB *gorm.DB
}

func NewPayoutDao() *PayoutDao {
	if dal.DB == nil {
		log.Panic("[FATAL] dal.DB is nil - database not initialized")
	}
	return &PayoutDao{DB: dal.DB}
}

func NewPayoutDaoWithDB(db *gorm.DB) *PayoutDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &PayoutDao{DB: db}
}

func (r *PayoutDao) Insert(p *model.Payout) error {
	return r.DB.Create(p).Error
}

func (r *PayoutDao) GetByID(payoutID uint64) (*model.Payout, error) {
	var m model.Payout
	err := r.DB.Where("payout_id = ?", payoutID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return &m, nil
}

// FindEligible returns PENDING payouts past their reserve period and at or
// above the batching minimum.
func (r *PayoutDao) FindEligible(now time.Time, minAmount int64) ([]model.Payout, error) {
	var out []model.Payout
	err := r.DB.
		Where("status = ?", model.PayoutStatusPending).
		Where("available_at <= ?", now).
		Where("amount >= ?", minAmount).
		Order("payout_id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("find eligible failed: %w", err)
	}
	return out, nil
}

// ClaimPending moves one payout PENDING -> PROCESSING and stamps the batch
// id. The status predicate makes the claim a compare-and-set: under two
// concurrent batch runs only one caller wins each row.
func (r *PayoutDao) ClaimPending(payoutID, batchID uint64) (bool, error) {
	res := r.DB.Model(&model.Payout{}).
		Where("payout_id = ? AND status = ?", payoutID, model.PayoutStatusPending).
		Updates(map[string]interface{}{
			"status":   model.PayoutStatusProcessing,
			"batch_id": batchID,
		})
	if res.Error != nil {
		return false, fmt.Errorf("claim pending failed: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ConfirmProcessing moves one payout PROCESSING -> PAID if it belongs to the
// batch. Returns false when the precondition does not hold, which makes
// re-confirmation a reported no-op rather than a double transition.
func (r *PayoutDao) ConfirmProcessing(payoutID, batchID uint64, externalRef string, at time.Time) (bool, error) {
	res := r.DB.Model(&model.Payout{}).
		Where("payout_id = ? AND batch_id = ? AND status = ?", payoutID, batchID, model.PayoutStatusProcessing).
		Updates(map[string]interface{}{
			"status":       model.PayoutStatusPaid,
			"external_ref": externalRef,
			"processed_at": at,
		})
	if res.Error != nil {
		return false, fmt.Errorf("confirm failed: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// FailProcessing moves one payout PROCESSING -> FAILED with the reason.
func (r *PayoutDao) FailProcessing(payoutID, batchID uint64, reason string, at time.Time) (bool, error) {
	res := r.DB.Model(&model.Payout{}).
		Where("payout_id = ? AND batch_id = ? AND status = ?", payoutID, batchID, model.PayoutStatusProcessing).
		Updates(map[string]interface{}{
			"status":         model.PayoutStatusFailed,
			"failure_reason": reason,
			"processed_at":   at,
		})
	if res.Error != nil {
		return false, fmt.Errorf("fail failed: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ListByBatch reconstructs batch membership. A batch exists only through the
// payouts stamped with its id.
func (r *PayoutDao) ListByBatch(batchID uint64) ([]model.Payout, error) {
	var out []model.Payout
	err := r.DB.Where("batch_id = ?", batchID).Order("payout_id").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list by batch failed: %w", err)
	}
	return out, nil
}

// RequeueFailed returns a FAILED payout to PENDING with a cleared batch id,
// so a later batch run can pick it up. Explicit admin action, never automatic.
func (r *PayoutDao) RequeueFailed(payoutID uint64) (bool, error) {
	res := r.DB.Model(&model.Payout{}).
		Where("payout_id = ? AND status = ?", payoutID, model.PayoutStatusFailed).
		Updates(map[string]interface{}{
			"status":         model.PayoutStatusPending,
			"batch_id":       nil,
			"failure_reason": nil,
			"processed_at":   nil,
		})
	if res.Error != nil {
		return false, fmt.Errorf("requeue failed: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}
