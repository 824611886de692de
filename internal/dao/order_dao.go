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

type OrderDao struct {
	DB *gorm.DB
}

func NewOrderDao() *OrderDao {
	if dal.DB == nil {
		log.Panic("[FATAL] dal.DB is nil - database not initialized")
	}
	return &OrderDao{DB: dal.DB}
}

func NewOrderDaoWithDB(db *gorm.DB) *OrderDao {
	if db == nil {
		log.Panic("[FATAL] db cannot be nil")
	}
	return &OrderDao{DB: db}
}

func (r *OrderDao) Insert(o *model.Order) error {
	return r.DB.Create(o).Error
}

func (r *OrderDao) GetByID(orderID uint64) (*model.Order, error) {
	var m model.Order
	err := r.DB.Where("order_id = ?", orderID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order failed: %w", err)
	}
	return &m, nil
}

// MarkCompleted moves an order ESCROWED -> COMPLETED. Conditional on the
// current status so completion (and the payout it creates) happens once.
func (r *OrderDao) MarkCompleted(orderID uint64, at time.Time) (bool, error) {
	res := r.DB.Model(&model.Order{}).
		Where("order_id = ? AND status = ?", orderID, model.OrderStatusEscrowed).
		Updates(map[string]interface{}{
			"status":       model.OrderStatusCompleted,
			"completed_at": at,
		})
	if res.Error != nil {
		return false, fmt.Errorf("mark completed failed: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}
