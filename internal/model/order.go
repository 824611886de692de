package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Order status.
const (
	OrderStatusEscrowed  int8 = 1 // paid by buyer, funds held
	OrderStatusCompleted int8 = 2 // delivered, payout created
	OrderStatusCancelled int8 = 3
)

// FeeSnapshot freezes the fee breakdown computed at checkout into the order
// row, so later policy changes never alter historical numbers.
type FeeSnapshot struct {
	PolicyVersion       int   `json:"policyVersion"`
	BaseAmount          int64 `json:"baseAmount"`
	BuyerPlatformFee    int64 `json:"buyerPlatformFee"`
	BuyerProcessingFee  int64 `json:"buyerProcessingFee"`
	GrossAmount         int64 `json:"grossAmount"`
	SellerPlatformFee   int64 `json:"sellerPlatformFee"`
	SellerPayoutAmount  int64 `json:"sellerPayoutAmount"`
	PlatformRevenue     int64 `json:"platformRevenue"`
	EstimatedGatewayFee int64 `json:"estimatedGatewayFee"`
}

func (s *FeeSnapshot) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("FeeSnapshot scan failed: %v", value)
	}
	return json.Unmarshal(bytes, s)
}

func (s FeeSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Order is a priced marketplace order. Only the fields the payout core
// needs are modelled here.
type Order struct {
	OrderID     uint64      `gorm:"column:order_id;primaryKey;not null" json:"orderId"`
	BuyerID     uint64      `gorm:"column:buyer_id;not null" json:"buyerId"`
	SellerID    uint64      `gorm:"column:seller_id;index;not null" json:"sellerId"`
	Title       string      `gorm:"column:title;type:varchar(120);not null" json:"title"`
	BaseAmount  int64       `gorm:"column:base_amount;not null" json:"baseAmount"` // cents
	Currency    string      `gorm:"column:currency;type:char(3);not null" json:"currency"`
	Gateway     string      `gorm:"column:gateway;type:varchar(16);not null" json:"gateway"`
	Method      string      `gorm:"column:method;type:varchar(16);not null" json:"method"`
	Status      int8        `gorm:"column:status;not null" json:"status"`
	FeeSnapshot FeeSnapshot `gorm:"column:fee_snapshot;type:json" json:"feeSnapshot"`
	CompletedAt *time.Time  `gorm:"column:completed_at" json:"completedAt"`
	CreateTime  time.Time   `gorm:"column:create_time;autoCreateTime;not null" json:"createTime"`
	UpdateTime  time.Time   `gorm:"column:update_time;autoUpdateTime;not null" json:"updateTime"`
}

func (Order) TableName() string { return "m_order" }
