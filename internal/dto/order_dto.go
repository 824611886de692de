package dto

import "time"

type CreateOrderReq struct {
	BuyerID  uint64 `json:"buyerId" binding:"required"`
	SellerID uint64 `json:"sellerId" binding:"required"`
	Title    string `json:"title" binding:"required,max=120"`
	Amount   int64  `json:"amount" binding:"required,gt=0"` // cents
	Gateway  string `json:"gateway" binding:"required"`
	Method   string `json:"method" binding:"required"`
}

type CreateOrderResp struct {
	OrderID  uint64       `json:"orderId"`
	Currency string       `json:"currency"`
	Fees     FeeQuoteResp `json:"fees"`
}

type CompleteOrderResp struct {
	OrderID     uint64    `json:"orderId"`
	PayoutID    uint64    `json:"payoutId"`
	Amount      int64     `json:"amount"` // cents credited pending
	AvailableAt time.Time `json:"availableAt"`
}
