package dto

// FeeQuoteReq prices a base amount without creating anything.
type FeeQuoteReq struct {
	Amount  int64  `json:"amount" binding:"required,gt=0"` // cents
	Gateway string `json:"gateway" binding:"required"`
	Method  string `json:"method" binding:"required"`
}

// FeeQuoteResp mirrors the engine result plus context.
type FeeQuoteResp struct {
	BaseAmount          int64  `json:"baseAmount"`
	BuyerPlatformFee    int64  `json:"buyerPlatformFee"`
	BuyerProcessingFee  int64  `json:"buyerProcessingFee"`
	GrossAmount         int64  `json:"grossAmount"`
	SellerPlatformFee   int64  `json:"sellerPlatformFee"`
	SellerPayoutAmount  int64  `json:"sellerPayoutAmount"`
	PlatformRevenue     int64  `json:"platformRevenue"`
	EstimatedGatewayFee int64  `json:"estimatedGatewayFee"`
	Currency            string `json:"currency"`
	PolicyVersion       int    `json:"policyVersion"`
}
