package fee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Result is the full fee breakdown for one order, integer cents throughout.
// GrossAmount = BaseAmount + BuyerPlatformFee + BuyerProcessingFee and
// SellerPayoutAmount + SellerPlatformFee = BaseAmount hold exactly.
type Result struct {
	BaseAmount         int64 `json:"baseAmount"`
	BuyerPlatformFee   int64 `json:"buyerPlatformFee"`
	BuyerProcessingFee int64 `json:"buyerProcessingFee"`
	GrossAmount        int64 `json:"grossAmount"`
	SellerPlatformFee  int64 `json:"sellerPlatformFee"`
	SellerPayoutAmount int64 `json:"sellerPayoutAmount"`
	PlatformRevenue    int64 `json:"platformRevenue"`

	// EstimatedGatewayFee is the unbuffered processor-cost estimate against
	// the real gross. Informational only, never part of the charged amounts.
	EstimatedGatewayFee int64 `json:"estimatedGatewayFee"`
}

// ValidationError rejects a calculation before any computation happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Calculate prices an order under the given policy. Pure and deterministic:
// no clock, no randomness, no I/O.
func Calculate(baseAmount int64, gw Gateway, m Method, p Policy) (Result, error) {
	if baseAmount < p.MinOrderAmount {
		return Result{}, &ValidationError{
			Reason: fmt.Sprintf("base amount %d below minimum order amount %d", baseAmount, p.MinOrderAmount),
		}
	}
	rate, err := rateFor(gw, m)
	if err != nil {
		return Result{}, err
	}

	buyerPlatformFee := maxInt64(pctOf(baseAmount, p.BuyerPlatformPct), p.BuyerPlatformMin)

	// Processor cost is estimated against a preliminary gross built with the
	// processing-fee floor. The real gross is always >= this preliminary
	// gross, so the charged fee over-covers rather than under-covers.
	prelimGross := baseAmount + buyerPlatformFee + p.BuyerProcessingMin
	estimated := estimateGatewayFee(prelimGross, rate, p.VATPct, p.BufferPct, p.BufferFixed)
	buyerProcessingFee := maxInt64(estimated, p.BuyerProcessingMin)

	grossAmount := baseAmount + buyerPlatformFee + buyerProcessingFee

	tier := p.SelectTier(baseAmount)
	sellerPlatformFee := maxInt64(pctOf(baseAmount, tier.Pct), tier.Min)
	sellerPayoutAmount := baseAmount - sellerPlatformFee

	return Result{
		BaseAmount:         baseAmount,
		BuyerPlatformFee:   buyerPlatformFee,
		BuyerProcessingFee: buyerProcessingFee,
		GrossAmount:        grossAmount,
		SellerPlatformFee:  sellerPlatformFee,
		SellerPayoutAmount: sellerPayoutAmount,
		PlatformRevenue:    buyerPlatformFee + sellerPlatformFee,
		// Second estimate: real gross, buffer terms zeroed.
		EstimatedGatewayFee: estimateGatewayFee(grossAmount, rate, p.VATPct, decimal.Zero, 0),
	}, nil
}

// estimateGatewayFee models the processor's percentage-plus-fixed cut on the
// given gross, grosses it up by VAT and then pads it with the safety buffer.
func estimateGatewayFee(gross int64, r gatewayRate, vatPct, bufferPct decimal.Decimal, bufferFixed int64) int64 {
	one := decimal.NewFromInt(1)
	raw := decimal.NewFromInt(gross).Mul(r.pct).Add(decimal.NewFromInt(r.fixed))
	withVAT := raw.Mul(one.Add(vatPct))
	buffered := withVAT.Mul(one.Add(bufferPct)).Add(decimal.NewFromInt(bufferFixed))
	return buffered.Round(0).IntPart()
}

// pctOf applies a fractional rate to an amount in cents, rounded half away
// from zero to whole cents.
func pctOf(amount int64, pct decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(pct).Round(0).IntPart()
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
