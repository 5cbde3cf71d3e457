package graphnode

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ConvertTokenToDecimal rescales a raw on-chain integer amount by the token's
// decimals count. The shift is exact: no float conversion ever happens, so
// repeated accumulation does not drift.
func ConvertTokenToDecimal(raw *big.Int, decimals int32) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -decimals)
}

var (
	ZeroDecimal = decimal.Zero
	OneDecimal  = decimal.NewFromInt(1)
	TwoDecimal  = decimal.NewFromInt(2)
)

// DecimalPtr returns d boxed; entities use *decimal.Decimal for values that
// are meaningfully unset (a token with no whitelisted pricing route).
func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// DerefDecimal unboxes an optional decimal, zero when unset.
func DerefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
