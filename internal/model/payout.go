package model

import (
	"time"
)

// Payout lifecycle. PENDING rows become PROCESSING only by being claimed
// into a batch; terminal states are reached only from PROCESSING.
const (
	PayoutStatusPending    = "PENDING"
	PayoutStatusProcessing = "PROCESSING"
	PayoutStatusPaid       = "PAID"
	PayoutStatusFailed     = "FAILED"
)

// Derived batch-level status, aggregated over member payout statuses.
const (
	BatchStatusProcessing         = "PROCESSING"
	BatchStatusConfirmed          = "CONFIRMED"
	BatchStatusFailed             = "FAILED"
	BatchStatusPartiallyConfirmed = "PARTIALLY_CONFIRMED"
)

// Payout is one credit owed to a seller, disbursed by manual bank EFT.
type Payout struct {
	PayoutID      uint64     `gorm:"column:payout_id;primaryKey;not null" json:"payoutId"`
	SellerID      uint64     `gorm:"column:seller_id;index;not null" json:"sellerId"`
	OrderID       *uint64    `gorm:"column:order_id" json:"orderId"`
	Amount        int64      `gorm:"column:amount;not null" json:"amount"` // cents
	Currency      string     `gorm:"column:currency;type:char(3);not null" json:"currency"`
	Status        string     `gorm:"column:status;type:varchar(12);index;not null" json:"status"`
	BatchID       *uint64    `gorm:"column:batch_id;index" json:"batchId"`
	AvailableAt   time.Time  `gorm:"column:available_at;not null" json:"availableAt"` // reserve-period expiry
	ExternalRef   *string    `gorm:"column:external_ref;type:varchar(64)" json:"externalRef"`
	FailureReason *string    `gorm:"column:failure_reason;type:varchar(255)" json:"failureReason"`
	ProcessedAt   *time.Time `gorm:"column:processed_at" json:"processedAt"`
	CreateTime    time.Time  `gorm:"column:create_time;autoCreateTime;not null" json:"createTime"`
	UpdateTime    time.Time  `gorm:"column:update_time;autoUpdateTime;not null" json:"updateTime"`
}

func (Payout) TableName() string { return "m_payout" }
