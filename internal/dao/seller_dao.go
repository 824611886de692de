package dao

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"marketplace-payout-api/internal/dal"
	"marketplace-payout-api/internal/model"
)

type SellerDao struct {
	DB *gorm.DB
}

func NewSellerDao() *SellerDao {
	if dal.DB == nil {
		log.Panic("[FATAL] dal.DB is nil - database not initialized")
	}
	return &SellerDao{DB: dal.DB}
}

func NewSellerDaoWithDB(db *gorm.DB) *SellerDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &SellerDao{DB: db}
}

func (r *SellerDao) GetSeller(sellerID uint64) (*model.SellerAccount, error) {
	var m model.SellerAccount
	err := r.DB.Where("seller_id = ?", sellerID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query seller failed: %w", err)
	}
	return &m, nil
}

// DefaultBankAccount returns the seller's on-file EFT destination, nil when
// none is configured.
func (r *SellerDao) DefaultBankAccount(sellerID uint64) (*model.BankAccount, error) {
	var m model.BankAccount
	err := r.DB.Where("seller_id = ? AND is_default = 1", sellerID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query bank account failed: %w", err)
	}
	return &m, nil
}

// AdjustBalance applies deltas to the seller's ledger fields as atomic SQL
// expressions. Both columns floor at zero so a replayed decrement can never
// drive a balance negative.
func (r *SellerDao) AdjustBalance(sellerID uint64, delta, deltaPending int64) error {
	updates := map[string]interface{}{}
	if delta != 0 {
		updates["balance"] = gorm.Expr("GREATEST(balance + ?, 0)", delta)
	}
	if deltaPending != 0 {
		updates["pending_balance"] = gorm.Expr("GREATEST(pending_balance + ?, 0)", deltaPending)
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.DB.Model(&model.SellerAccount{}).
		Where("seller_id = ?", sellerID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("adjust balance failed: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("adjust balance: seller %d not found", sellerID)
	}
	return nil
}
