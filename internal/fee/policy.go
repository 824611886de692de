package fee

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is one bracket of the seller commission schedule.
// A nil UpTo marks the unbounded last bracket.
type Tier struct {
	UpTo *int64          `json:"upTo"`
	Pct  decimal.Decimal `json:"pct"`
	Min  int64           `json:"min"`
}

// Policy is a versioned fee schedule. All amounts are integer cents,
// all percentages are fractions (0.05 = 5%).
type Policy struct {
	Version            int             `json:"version"`
	BuyerPlatformPct   decimal.Decimal `json:"buyerPlatformPct"`
	BuyerPlatformMin   int64           `json:"buyerPlatformMin"`
	BuyerProcessingMin int64           `json:"buyerProcessingMin"`
	SellerTiers        []Tier          `json:"sellerTiers"`
	BufferPct          decimal.Decimal `json:"bufferPct"`
	BufferFixed        int64           `json:"bufferFixed"`
	VATPct             decimal.Decimal `json:"vatPct"`
	ReserveDays        int             `json:"reserveDays"`
	PayoutMin          int64           `json:"payoutMin"`
	MinOrderAmount     int64           `json:"minOrderAmount"`
}

// DefaultPolicy is the built-in schedule used when no policy row is active.
// It is fully self-contained so the engine works without any database.
func DefaultPolicy() Policy {
	upTo := func(v int64) *int64 { return &v }
	return Policy{
		Version:            1,
		BuyerPlatformPct:   decimal.NewFromFloat(0.05),
		BuyerPlatformMin:   500,
		BuyerProcessingMin: 250,
		SellerTiers: []Tier{
			{UpTo: upTo(50000), Pct: decimal.NewFromFloat(0.12), Min: 1500},
			{UpTo: upTo(200000), Pct: decimal.NewFromFloat(0.10), Min: 2000},
			{UpTo: nil, Pct: decimal.NewFromFloat(0.08), Min: 3000},
		},
		BufferPct:      decimal.NewFromFloat(0.025),
		BufferFixed:    50,
		VATPct:         decimal.NewFromFloat(0.15),
		ReserveDays:    7,
		PayoutMin:      10000,
		MinOrderAmount: 1500,
	}
}

// Validate checks structural invariants: tiers ascending by bound, last tier
// unbounded, non-negative floors, sane percentages. Every tier's fee floor
// must be covered by the smallest base that tier can price, so no accepted
// order ever produces a negative seller payout.
func (p Policy) Validate() error {
	if len(p.SellerTiers) == 0 {
		return errors.New("policy: seller tiers empty")
	}
	one := decimal.NewFromInt(1)
	var prev *int64
	for i, t := range p.SellerTiers {
		last := i == len(p.SellerTiers)-1
		if last && t.UpTo != nil {
			return errors.New("policy: last seller tier must be unbounded")
		}
		if !last && t.UpTo == nil {
			return fmt.Errorf("policy: tier %d unbounded but not last", i)
		}
		if t.UpTo != nil && prev != nil && *t.UpTo <= *prev {
			return fmt.Errorf("policy: tier %d bound not ascending", i)
		}
		if t.Pct.IsNegative() || t.Pct.GreaterThanOrEqual(one) {
			return fmt.Errorf("policy: tier %d pct out of range", i)
		}
		if t.Min < 0 {
			return fmt.Errorf("policy: tier %d min negative", i)
		}
		lowestBase := p.MinOrderAmount
		if i > 0 {
			lowestBase = *prev + 1
		}
		if t.Min > lowestBase {
			return fmt.Errorf("policy: tier %d fee floor %d exceeds its smallest base %d", i, t.Min, lowestBase)
		}
		prev = t.UpTo
	}
	if p.BuyerPlatformPct.IsNegative() || p.BuyerPlatformPct.GreaterThanOrEqual(one) {
		return errors.New("policy: buyer platform pct out of range")
	}
	if p.BuyerPlatformMin < 0 || p.BuyerProcessingMin < 0 || p.BufferFixed < 0 {
		return errors.New("policy: negative fee floor")
	}
	if p.VATPct.IsNegative() || p.BufferPct.IsNegative() {
		return errors.New("policy: negative rate")
	}
	if p.MinOrderAmount < 0 || p.PayoutMin < 0 || p.ReserveDays < 0 {
		return errors.New("policy: negative threshold")
	}
	return nil
}

// SelectTier returns the first tier whose bound covers baseAmount.
// The unbounded last tier catches everything above the bounded brackets.
func (p Policy) SelectTier(baseAmount int64) Tier {
	for _, t := range p.SellerTiers {
		if t.UpTo == nil || baseAmount <= *t.UpTo {
			return t
		}
	}
	return p.SellerTiers[len(p.SellerTiers)-1]
}
