package exchange

import (
	"context"
	"fmt"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetMaticPriceInUSD derives the MATIC/USD price from the configured stable
// reference pairs, weighting each stable's quote by its pair's WMATIC depth.
// A missing pair degrades to the remaining one; no reference pair at all (or
// zero combined liquidity) degrades to zero.
func (s *Subgraph) GetMaticPriceInUSD(ctx context.Context) (decimal.Decimal, error) {
	// usdc is token1, usdt is token0, in their respective WMATIC pairs
	usdcPair := NewPair(s.config.USDCMaticPair)
	if err := s.Load(ctx, usdcPair); err != nil {
		return decimal.Zero, fmt.Errorf("loading usdc reference pair: %w", err)
	}
	usdtPair := NewPair(s.config.USDTMaticPair)
	if err := s.Load(ctx, usdtPair); err != nil {
		return decimal.Zero, fmt.Errorf("loading usdt reference pair: %w", err)
	}

	if usdcPair.Exists() && usdtPair.Exists() {
		totalLiquidityMATIC := usdcPair.Reserve0.Add(usdtPair.Reserve1)
		if totalLiquidityMATIC.IsZero() {
			return decimal.Zero, nil
		}

		usdcWeight := usdcPair.Reserve0.Div(totalLiquidityMATIC)
		usdtWeight := usdtPair.Reserve1.Div(totalLiquidityMATIC)

		return usdcPair.Token1Price.Mul(usdcWeight).
			Add(usdtPair.Token0Price.Mul(usdtWeight)), nil
	}

	if usdcPair.Exists() {
		return usdcPair.Token1Price, nil
	}
	if usdtPair.Exists() {
		return usdtPair.Token0Price, nil
	}

	return decimal.Zero, nil
}

// FindMaticPerToken walks the whitelist in its configured order and prices
// the token off the first reference pair that holds more than the minimum
// MATIC reserve. A token with no such pair is unpriced and comes back zero.
func (s *Subgraph) FindMaticPerToken(ctx context.Context, tokenAddress string) (decimal.Decimal, error) {
	if tokenAddress == s.config.WMATICAddress {
		return graphnode.OneDecimal, nil
	}

	for _, otherToken := range s.config.Whitelist {
		pairAddress := s.pairAddressForTokens(tokenAddress, otherToken)
		if pairAddress == "" {
			continue
		}

		pair := NewPair(pairAddress)
		if err := s.Load(ctx, pair); err != nil {
			return decimal.Zero, err
		}
		if !pair.Exists() {
			s.log.Debug("pair in lookup table but not in store", zap.String("pair", pairAddress))
			continue
		}

		if pair.Token0 == tokenAddress && pair.ReserveMATIC.GreaterThan(s.config.MinimumLiquidityThresholdMATIC) {
			token1 := NewToken(pair.Token1)
			if err := s.Load(ctx, token1); err != nil {
				return decimal.Zero, err
			}
			return pair.Token1Price.Mul(graphnode.DerefDecimal(token1.DerivedMATIC)), nil
		}
		if pair.Token1 == tokenAddress && pair.ReserveMATIC.GreaterThan(s.config.MinimumLiquidityThresholdMATIC) {
			token0 := NewToken(pair.Token0)
			if err := s.Load(ctx, token0); err != nil {
				return decimal.Zero, err
			}
			return pair.Token0Price.Mul(graphnode.DerefDecimal(token0.DerivedMATIC)), nil
		}
	}

	return decimal.Zero, nil
}

// getTrackedVolumeUSD values a trade through whitelisted tokens only: the
// average when both sides are whitelisted, double the whitelisted side when
// only one is (a swap moves equal value on both legs), zero when neither is.
func (s *Subgraph) getTrackedVolumeUSD(bundle *Bundle, tokenAmount0 decimal.Decimal, token0 *Token, tokenAmount1 decimal.Decimal, token1 *Token) decimal.Decimal {
	price0 := graphnode.DerefDecimal(token0.DerivedMATIC).Mul(bundle.MaticPrice)
	price1 := graphnode.DerefDecimal(token1.DerivedMATIC).Mul(bundle.MaticPrice)

	token0Whitelisted := s.config.IsWhitelisted(token0.ID)
	token1Whitelisted := s.config.IsWhitelisted(token1.ID)

	if token0Whitelisted && token1Whitelisted {
		return tokenAmount0.Mul(price0).
			Add(tokenAmount1.Mul(price1)).
			Div(graphnode.TwoDecimal)
	}

	if token0Whitelisted && !token1Whitelisted {
		return tokenAmount0.Mul(price0).Mul(graphnode.TwoDecimal)
	}

	if !token0Whitelisted && token1Whitelisted {
		return tokenAmount1.Mul(price1).Mul(graphnode.TwoDecimal)
	}

	return decimal.Zero
}

// getTrackedLiquidityUSD applies the same whitelist rule to reserves: sum of
// both sides, double of the single whitelisted side, or zero.
func (s *Subgraph) getTrackedLiquidityUSD(bundle *Bundle, tokenAmount0 decimal.Decimal, token0 *Token, tokenAmount1 decimal.Decimal, token1 *Token) decimal.Decimal {
	price0 := graphnode.DerefDecimal(token0.DerivedMATIC).Mul(bundle.MaticPrice)
	price1 := graphnode.DerefDecimal(token1.DerivedMATIC).Mul(bundle.MaticPrice)

	token0Whitelisted := s.config.IsWhitelisted(token0.ID)
	token1Whitelisted := s.config.IsWhitelisted(token1.ID)

	if token0Whitelisted && token1Whitelisted {
		return tokenAmount0.Mul(price0).Add(tokenAmount1.Mul(price1))
	}

	if token0Whitelisted && !token1Whitelisted {
		return tokenAmount0.Mul(price0).Mul(graphnode.TwoDecimal)
	}

	if !token0Whitelisted && token1Whitelisted {
		return tokenAmount1.Mul(price1).Mul(graphnode.TwoDecimal)
	}

	return decimal.Zero
}
