package fee

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultPolicyValid(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy must validate: %v", err)
	}
}

func TestValidateRejectsBadTiers(t *testing.T) {
	upTo := func(v int64) *int64 { return &v }

	cases := []struct {
		name  string
		tiers []Tier
	}{
		{"empty", nil},
		{"last tier bounded", []Tier{
			{UpTo: upTo(50000), Pct: decimal.NewFromFloat(0.1), Min: 100},
		}},
		{"bounds not ascending", []Tier{
			{UpTo: upTo(50000), Pct: decimal.NewFromFloat(0.1), Min: 100},
			{UpTo: upTo(40000), Pct: decimal.NewFromFloat(0.08), Min: 100},
			{UpTo: nil, Pct: decimal.NewFromFloat(0.05), Min: 100},
		}},
		{"unbounded in middle", []Tier{
			{UpTo: nil, Pct: decimal.NewFromFloat(0.1), Min: 100},
			{UpTo: nil, Pct: decimal.NewFromFloat(0.08), Min: 100},
		}},
		{"pct out of range", []Tier{
			{UpTo: nil, Pct: decimal.NewFromFloat(1.2), Min: 100},
		}},
	}
	for _, c := range cases {
		p := DefaultPolicy()
		p.SellerTiers = c.tiers
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestValidateRejectsUncoveredFeeFloor(t *testing.T) {
	upTo := func(v int64) *int64 { return &v }

	// Minimum order below the first tier's floor would admit orders whose
	// seller payout goes negative.
	p := DefaultPolicy()
	p.MinOrderAmount = p.SellerTiers[0].Min - 1
	if err := p.Validate(); err == nil {
		t.Error("expected rejection: minimum order below first tier floor")
	}
	p.MinOrderAmount = p.SellerTiers[0].Min
	if err := p.Validate(); err != nil {
		t.Errorf("minimum order equal to first tier floor must validate: %v", err)
	}

	// Same hole in a later tier: its floor must be covered by the smallest
	// base the tier can price.
	p = DefaultPolicy()
	p.SellerTiers = []Tier{
		{UpTo: upTo(50000), Pct: decimal.NewFromFloat(0.12), Min: 1500},
		{UpTo: nil, Pct: decimal.NewFromFloat(0.10), Min: 60000},
	}
	if err := p.Validate(); err == nil {
		t.Error("expected rejection: second tier floor exceeds its smallest base")
	}
}

func TestSelectTier(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		base    int64
		wantMin int64 // tiers are distinguishable by their Min
	}{
		{1, 1500},
		{50000, 1500},
		{50001, 2000},
		{200000, 2000},
		{200001, 3000},
		{100000000, 3000},
	}
	for _, c := range cases {
		tier := p.SelectTier(c.base)
		if tier.Min != c.wantMin {
			t.Errorf("SelectTier(%d) picked tier with min %d, want %d", c.base, tier.Min, c.wantMin)
		}
	}
}
