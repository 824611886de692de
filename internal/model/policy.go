package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace-payout-api/internal/fee"
)

// TierList stores the seller commission brackets as a JSON column.
type TierList []fee.Tier

func (t *TierList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("TierList scan failed: %v", value)
	}
	return json.Unmarshal(bytes, t)
}

func (t TierList) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// FeePolicyM is the persisted fee schedule. At most one row has Status=1;
// when none does, fee.DefaultPolicy() applies.
type FeePolicyM struct {
	ID                 uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Version            int             `gorm:"column:version;not null" json:"version"`
	Status             int8            `gorm:"column:status;index;not null" json:"status"` // 1 active
	BuyerPlatformPct   decimal.Decimal `gorm:"column:buyer_platform_pct;type:decimal(8,6);not null" json:"buyerPlatformPct"`
	BuyerPlatformMin   int64           `gorm:"column:buyer_platform_min;not null" json:"buyerPlatformMin"`
	BuyerProcessingMin int64           `gorm:"column:buyer_processing_min;not null" json:"buyerProcessingMin"`
	SellerTiers        TierList        `gorm:"column:seller_tiers;type:json;not null" json:"sellerTiers"`
	BufferPct          decimal.Decimal `gorm:"column:buffer_pct;type:decimal(8,6);not null" json:"bufferPct"`
	BufferFixed        int64           `gorm:"column:buffer_fixed;not null" json:"bufferFixed"`
	VATPct             decimal.Decimal `gorm:"column:vat_pct;type:decimal(8,6);not null" json:"vatPct"`
	ReserveDays        int             `gorm:"column:reserve_days;not null" json:"reserveDays"`
	PayoutMin          int64           `gorm:"column:payout_min;not null" json:"payoutMin"`
	MinOrderAmount     int64           `gorm:"column:min_order_amount;not null" json:"minOrderAmount"`
	CreateTime         time.Time       `gorm:"column:create_time;autoCreateTime;not null" json:"createTime"`
	UpdateTime         time.Time       `gorm:"column:update_time;autoUpdateTime;not null" json:"updateTime"`
}

func (FeePolicyM) TableName() string { return "m_fee_policy" }

// ToPolicy maps the row onto the engine's value type.
func (m FeePolicyM) ToPolicy() fee.Policy {
	return fee.Policy{
		Version:            m.Version,
		BuyerPlatformPct:   m.BuyerPlatformPct,
		BuyerPlatformMin:   m.BuyerPlatformMin,
		BuyerProcessingMin: m.BuyerProcessingMin,
		SellerTiers:        m.SellerTiers,
		BufferPct:          m.BufferPct,
		BufferFixed:        m.BufferFixed,
		VATPct:             m.VATPct,
		ReserveDays:        m.ReserveDays,
		PayoutMin:          m.PayoutMin,
		MinOrderAmount:     m.MinOrderAmount,
	}
}
