package model

import (
	"time"
)

// SellerAccount carries the seller's ledger fields. Balance is available
// funds, PendingBalance is escrowed money waiting out the reserve period.
// Both are adjusted only through atomic SQL expressions, never
// read-modify-write in application code.
type SellerAccount struct {
	SellerID       uint64    `gorm:"column:seller_id;primaryKey;not null" json:"sellerId"`
	Email          string    `gorm:"column:email;type:varchar(120);not null" json:"email"`
	Name           string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Currency       string    `gorm:"column:currency;type:char(3);not null" json:"currency"`
	Balance        int64     `gorm:"column:balance;not null" json:"balance"`                // cents
	PendingBalance int64     `gorm:"column:pending_balance;not null" json:"pendingBalance"` // cents
	Status         int8      `gorm:"column:status;not null" json:"status"`                  // 1 active
	CreateTime     time.Time `gorm:"column:create_time;autoCreateTime;not null" json:"createTime"`
	UpdateTime     time.Time `gorm:"column:update_time;autoUpdateTime;not null" json:"updateTime"`
}

func (SellerAccount) TableName() string { return "m_seller_account" }

// BankAccount is the seller's on-file EFT destination. At most one row per
// seller has IsDefault set; payout batching skips sellers without one.
type BankAccount struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SellerID      uint64    `gorm:"column:seller_id;index;not null" json:"sellerId"`
	BankName      string    `gorm:"column:bank_name;type:varchar(60);not null" json:"bankName"`
	AccountNumber string    `gorm:"column:account_number;type:varchar(34);not null" json:"accountNumber"`
	BranchCode    string    `gorm:"column:branch_code;type:varchar(12);not null" json:"branchCode"`
	AccountHolder string    `gorm:"column:account_holder;type:varchar(120);not null" json:"accountHolder"`
	AccountType   string    `gorm:"column:account_type;type:varchar(20);not null" json:"accountType"`
	IsDefault     int8      `gorm:"column:is_default;not null" json:"isDefault"`
	CreateTime    time.Time `gorm:"column:create_time;autoCreateTime;not null" json:"createTime"`
	UpdateTime    time.Time `gorm:"column:update_time;autoUpdateTime;not null" json:"updateTime"`
}

func (BankAccount) TableName() string { return "m_bank_account" }
