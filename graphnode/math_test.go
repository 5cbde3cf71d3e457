package graphnode

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTokenToDecimal(t *testing.T) {
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, "1.5", ConvertTokenToDecimal(wei, 18).String())

	usdc := big.NewInt(2500000)
	assert.Equal(t, "2.5", ConvertTokenToDecimal(usdc, 6).String())

	assert.Equal(t, "42", ConvertTokenToDecimal(big.NewInt(42), 0).String())
	assert.True(t, ConvertTokenToDecimal(nil, 18).IsZero())
}

func TestConvertTokenToDecimal_Exact(t *testing.T) {
	// 0.1 is not representable as a float; the scaled conversion must hold
	// it exactly through repeated accumulation
	tenth, _ := new(big.Int).SetString("100000000000000000", 10)

	sum := decimal.Zero
	for i := 0; i < 10; i++ {
		sum = sum.Add(ConvertTokenToDecimal(tenth, 18))
	}
	require.Equal(t, "1", sum.String())
}

func TestDecimalPointers(t *testing.T) {
	d := decimal.NewFromInt(7)
	p := DecimalPtr(d)
	require.NotNil(t, p)
	assert.Equal(t, "7", p.String())

	// boxing copies, mutating the source does not reach the pointer
	d = d.Add(decimal.NewFromInt(1))
	assert.Equal(t, "7", p.String())

	assert.True(t, DerefDecimal(nil).IsZero())
	assert.Equal(t, "7", DerefDecimal(p).String())
}
