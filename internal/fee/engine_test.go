package fee

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func testPolicy() Policy {
	return DefaultPolicy()
}

func mustCalculate(t *testing.T, base int64, gw Gateway, m Method, p Policy) Result {
	t.Helper()
	res, err := Calculate(base, gw, m, p)
	if err != nil {
		t.Fatalf("Calculate(%d, %s, %s) failed: %v", base, gw, m, err)
	}
	return res
}

func TestConservation(t *testing.T) {
	p := testPolicy()
	amounts := []int64{1500, 5000, 49999, 50000, 50001, 123456, 200000, 999999, 10000000}
	gateways := []Gateway{GatewayA, GatewayB}
	methods := []Method{MethodCard, MethodBankTransfer, MethodUnknown}

	for _, gw := range gateways {
		for _, m := range methods {
			for _, base := range amounts {
				res := mustCalculate(t, base, gw, m, p)
				if res.GrossAmount != res.BaseAmount+res.BuyerPlatformFee+res.BuyerProcessingFee {
					t.Errorf("%s/%s base=%d: gross %d != base+fees", gw, m, base, res.GrossAmount)
				}
				if res.SellerPayoutAmount+res.SellerPlatformFee != res.BaseAmount {
					t.Errorf("%s/%s base=%d: payout %d + seller fee %d != base", gw, m, base, res.SellerPayoutAmount, res.SellerPlatformFee)
				}
				if res.PlatformRevenue != res.BuyerPlatformFee+res.SellerPlatformFee {
					t.Errorf("%s/%s base=%d: platform revenue mismatch", gw, m, base)
				}
				if res.SellerPayoutAmount < 0 {
					t.Errorf("%s/%s base=%d: seller payout negative: %d", gw, m, base, res.SellerPayoutAmount)
				}
			}
		}
	}
}

func TestBuyerFeesMonotonic(t *testing.T) {
	p := testPolicy()
	amounts := []int64{1500, 2500, 5000, 10000, 50000, 50001, 100000, 200000, 200001, 1000000}

	var prev Result
	for i, base := range amounts {
		res := mustCalculate(t, base, GatewayA, MethodCard, p)
		if i > 0 {
			if res.BuyerPlatformFee < prev.BuyerPlatformFee {
				t.Errorf("buyer platform fee decreased at base=%d: %d < %d", base, res.BuyerPlatformFee, prev.BuyerPlatformFee)
			}
			if res.BuyerProcessingFee < prev.BuyerProcessingFee {
				t.Errorf("buyer processing fee decreased at base=%d: %d < %d", base, res.BuyerProcessingFee, prev.BuyerProcessingFee)
			}
			if res.GrossAmount <= prev.GrossAmount {
				t.Errorf("gross not increasing at base=%d: %d <= %d", base, res.GrossAmount, prev.GrossAmount)
			}
		}
		prev = res
	}
}

func TestSellerFeeMonotonicWithinTier(t *testing.T) {
	p := testPolicy()
	// all within the first tier (<= 50000)
	amounts := []int64{13000, 20000, 30000, 45000, 50000}

	var prevFee int64
	for i, base := range amounts {
		res := mustCalculate(t, base, GatewayA, MethodCard, p)
		if i > 0 && res.SellerPlatformFee < prevFee {
			t.Errorf("seller fee decreased within tier at base=%d: %d < %d", base, res.SellerPlatformFee, prevFee)
		}
		prevFee = res.SellerPlatformFee
	}
}

func TestBuyerPlatformFeeFloor(t *testing.T) {
	p := testPolicy()
	p.BuyerPlatformPct = decimal.NewFromFloat(0.03)
	p.BuyerPlatformMin = 1000

	res := mustCalculate(t, 5000, GatewayA, MethodCard, p)
	// 3% of 5000 = 150 < 1000, floor wins exactly
	if res.BuyerPlatformFee != 1000 {
		t.Errorf("expected floor fee 1000, got %d", res.BuyerPlatformFee)
	}
}

func TestTierSelection(t *testing.T) {
	p := testPolicy()

	cases := []struct {
		base int64
		want int64
	}{
		{50000, 6000},      // first tier: max(12% * 50000, 1500)
		{50001, 5000},      // second tier: max(10% * 50001 rounded, 2000)
		{10000000, 800000}, // unbounded third tier: 8%
		{13000, 1560},      // first tier pct above min
		{5000, 1500},       // first tier min wins: 12% * 5000 = 600 < 1500
	}
	for _, c := range cases {
		res := mustCalculate(t, c.base, GatewayA, MethodCard, p)
		if res.SellerPlatformFee != c.want {
			t.Errorf("base=%d: seller fee = %d, want %d", c.base, res.SellerPlatformFee, c.want)
		}
	}
}

func TestMinimumOrderBoundary(t *testing.T) {
	p := testPolicy()

	res, err := Calculate(p.MinOrderAmount, GatewayA, MethodCard, p)
	if err != nil {
		t.Errorf("base exactly at minimum must be accepted: %v", err)
	}
	// The smallest acceptable order must still cover the tier fee floor.
	if res.SellerPayoutAmount < 0 {
		t.Errorf("seller payout negative at minimum order: %d", res.SellerPayoutAmount)
	}

	_, err = Calculate(p.MinOrderAmount-1, GatewayA, MethodCard, p)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("one cent below minimum must be rejected with ValidationError, got %v", err)
	}
}

func TestUnknownEnumsRejected(t *testing.T) {
	p := testPolicy()

	if _, err := Calculate(10000, Gateway("GATEWAY_X"), MethodCard, p); err == nil {
		t.Error("unknown gateway must be rejected")
	}
	if _, err := Calculate(10000, GatewayA, Method("CRYPTO"), p); err == nil {
		t.Error("unknown method must be rejected")
	}
	// UNKNOWN is a legitimate method with its own conservative branch
	res := mustCalculate(t, 10000, GatewayA, MethodUnknown, p)
	card := mustCalculate(t, 10000, GatewayA, MethodCard, p)
	if res.BuyerProcessingFee < card.BuyerProcessingFee {
		t.Errorf("UNKNOWN estimate %d must not undercut CARD estimate %d", res.BuyerProcessingFee, card.BuyerProcessingFee)
	}
}

func TestProcessingFeeFloor(t *testing.T) {
	p := testPolicy()
	// Tiny order: the percentage estimate lands below the floor.
	res := mustCalculate(t, p.MinOrderAmount, GatewayA, MethodBankTransfer, p)
	if res.BuyerProcessingFee < p.BuyerProcessingMin {
		t.Errorf("processing fee %d below floor %d", res.BuyerProcessingFee, p.BuyerProcessingMin)
	}
}

func TestInformationalEstimate(t *testing.T) {
	p := testPolicy()
	res := mustCalculate(t, 100000, GatewayB, MethodCard, p)
	if res.EstimatedGatewayFee <= 0 {
		t.Error("informational gateway estimate must be positive")
	}
	if res.EstimatedGatewayFee >= res.GrossAmount {
		t.Error("informational gateway estimate must be a fraction of gross")
	}
	// Unbuffered estimate at the same gross is strictly below the buffered
	// one used for charging.
	buffered := estimateGatewayFee(res.GrossAmount, gatewayRates[GatewayB][MethodCard], p.VATPct, p.BufferPct, p.BufferFixed)
	if res.EstimatedGatewayFee >= buffered {
		t.Errorf("unbuffered estimate %d must stay below buffered %d", res.EstimatedGatewayFee, buffered)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	p := testPolicy()
	a := mustCalculate(t, 77777, GatewayB, MethodBankTransfer, p)
	b := mustCalculate(t, 77777, GatewayB, MethodBankTransfer, p)
	if a != b {
		t.Errorf("results differ for identical inputs: %+v vs %+v", a, b)
	}
}
