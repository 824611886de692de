package dao

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"marketplace-payout-api/internal/dal"
	"marketplace-payout-api/internal/model"
)

type PolicyDao struct {
	DB *gorm.DB
}

func NewPolicyDao() *PolicyDao {
	if dal.DB == nil {
		log.Panic("[FATAL] dal.DB is nil - database not initialized")
	}
	return &PolicyDao{DB: dal.DB}
}

func NewPolicyDaoWithDB(db *gorm.DB) *PolicyDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &PolicyDao{DB: db}
}

// ActivePolicy returns the single active policy row, nil when none is marked
// active (callers then fall back to the built-in default).
func (r *PolicyDao) ActivePolicy() (*model.FeePolicyM, error) {
	var m model.FeePolicyM
	err := r.DB.Where("status = 1").Order("version DESC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query active policy failed: %w", err)
	}
	return &m, nil
}
