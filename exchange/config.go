package exchange

import (
	"github.com/shopspring/decimal"
)

// Config carries the deployment-time reference tables: whitelisted pricing
// tokens, the stable/WMATIC reference pairs, and known staking pools whose
// share-token transfers are not liquidity events. It is built once at process
// start and never mutated afterwards.
type Config struct {
	FactoryAddress string
	WMATICAddress  string

	// Whitelist is ordered; FindMaticPerToken walks it front to back, so do
	// not turn it into a map.
	Whitelist []string

	// USDCMaticPair has WMATIC as token0 and USDC as token1.
	USDCMaticPair string
	// USDTMaticPair has USDT as token0 and WMATIC as token1.
	USDTMaticPair string

	MiningPools map[string]bool

	// MinimumLiquidityThresholdMATIC gates which pairs are deep enough to
	// price a token from.
	MinimumLiquidityThresholdMATIC decimal.Decimal
}

func DefaultConfig() *Config {
	return &Config{
		FactoryAddress: "0x9d6dd57a2b2ae27b5b1b5e0e4cd6a232d2b54a75",
		WMATICAddress:  "0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270",
		Whitelist: []string{
			"0x0d500b1d8e8ef31e21c99d1db9a6444d3adf1270", // WMATIC
			"0x2791bca1f2de4661ed88a30c99a7a9449aa84174", // USDC
			"0xc2132d05d31c914a87c6611c10748aeb04b58e8f", // USDT
			"0x8f3cf7ad23cd3cadbd9735aff958023239c6a063", // DAI
			"0x7ceb23fd6bc0add59e62ac25578270cff1b9f619", // WETH
			"0x1f9a1997fe1ab4ab4cdbbeca252d4ffb44d84bea", // ATX
		},
		USDCMaticPair: "0x6e7a5fafcec6bb1e78bae2a1f0b612012bf14827",
		USDTMaticPair: "0x604229c960e5cacf2aaeac8be68ac07ba9df81c3",
		MiningPools:   map[string]bool{},
		MinimumLiquidityThresholdMATIC: decimal.NewFromInt(10),
	}
}

func (c *Config) IsWhitelisted(address string) bool {
	for _, addr := range c.Whitelist {
		if addr == address {
			return true
		}
	}
	return false
}

func (c *Config) IsMiningPool(address string) bool {
	return c.MiningPools[address]
}
