package fee

import (
	"github.com/shopspring/decimal"
)

// Gateway identifies the payment processor charging us per transaction.
type Gateway string

const (
	GatewayA Gateway = "GATEWAY_A"
	GatewayB Gateway = "GATEWAY_B"
)

// Method is the payment rail used by the buyer.
type Method string

const (
	MethodCard         Method = "CARD"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodUnknown      Method = "UNKNOWN"
)

// gatewayRate is a processor's percentage-plus-fixed pricing for one rail,
// fixed part in cents. UNKNOWN carries each processor's most expensive rail
// so the recovered fee never under-covers.
type gatewayRate struct {
	pct   decimal.Decimal
	fixed int64
}

var gatewayRates = map[Gateway]map[Method]gatewayRate{
	GatewayA: {
		MethodCard:         {pct: decimal.NewFromFloat(0.029), fixed: 30},
		MethodBankTransfer: {pct: decimal.NewFromFloat(0.020), fixed: 0},
		MethodUnknown:      {pct: decimal.NewFromFloat(0.035), fixed: 30},
	},
	GatewayB: {
		MethodCard:         {pct: decimal.NewFromFloat(0.032), fixed: 0},
		MethodBankTransfer: {pct: decimal.NewFromFloat(0.015), fixed: 200},
		MethodUnknown:      {pct: decimal.NewFromFloat(0.035), fixed: 200},
	},
}

func rateFor(gw Gateway, m Method) (gatewayRate, error) {
	rails, ok := gatewayRates[gw]
	if !ok {
		return gatewayRate{}, &ValidationError{Reason: "unknown gateway: " + string(gw)}
	}
	r, ok := rails[m]
	if !ok {
		return gatewayRate{}, &ValidationError{Reason: "unknown payment method: " + string(m)}
	}
	return r, nil
}
