package exchange

import (
	"context"
	"fmt"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (s *Subgraph) HandlePairSyncEvent(ctx context.Context, ev *PairSyncEvent) error {
	pair := NewPair(ev.LogAddress.Pretty())
	if err := s.Load(ctx, pair); err != nil {
		return fmt.Errorf("loading pair %s: %w", pair.ID, err)
	}
	if !pair.Exists() {
		s.log.Error("pair not found", zap.String("pair", pair.ID))
		return nil
	}

	token0 := NewToken(pair.Token0)
	if err := s.Load(ctx, token0); err != nil {
		return fmt.Errorf("loading token %s: %w", pair.Token0, err)
	}
	if !token0.Exists() {
		s.log.Error("token not found", zap.String("token", pair.Token0))
		return nil
	}

	token1 := NewToken(pair.Token1)
	if err := s.Load(ctx, token1); err != nil {
		return fmt.Errorf("loading token %s: %w", pair.Token1, err)
	}
	if !token1.Exists() {
		s.log.Error("token not found", zap.String("token", pair.Token1))
		return nil
	}

	factory := NewAthleteXFactory(s.config.FactoryAddress)
	if err := s.Load(ctx, factory); err != nil {
		return fmt.Errorf("loading factory: %w", err)
	}
	if !factory.Exists() {
		s.log.Error("factory not found", zap.String("factory", s.config.FactoryAddress))
		return nil
	}

	// reset factory liquidity by subtracting only tracked liquidity
	factory.TotalLiquidityMATIC = factory.TotalLiquidityMATIC.Sub(pair.TrackedReserveMATIC)

	// reset token total liquidity amounts
	token0.TotalLiquidity = token0.TotalLiquidity.Sub(pair.Reserve0)
	token1.TotalLiquidity = token1.TotalLiquidity.Sub(pair.Reserve1)

	pair.Reserve0 = graphnode.ConvertTokenToDecimal(ev.Reserve0, token0.Decimals)
	pair.Reserve1 = graphnode.ConvertTokenToDecimal(ev.Reserve1, token1.Decimals)

	if !pair.Reserve1.IsZero() {
		pair.Token0Price = pair.Reserve0.Div(pair.Reserve1)
	} else {
		pair.Token0Price = decimal.Zero
	}
	if !pair.Reserve0.IsZero() {
		pair.Token1Price = pair.Reserve1.Div(pair.Reserve0)
	} else {
		pair.Token1Price = decimal.Zero
	}

	// the MATIC price reads reference-pair reserves from the store, so it
	// must run before this pair's new reserves are saved
	maticPrice, err := s.GetMaticPriceInUSD(ctx)
	if err != nil {
		return err
	}

	bundle := NewBundle(BundleID)
	if err := s.Load(ctx, bundle); err != nil {
		return fmt.Errorf("loading bundle: %w", err)
	}
	if !bundle.Exists() {
		s.log.Error("bundle not found")
		return nil
	}
	bundle.MaticPrice = maticPrice
	if err := s.Save(ctx, bundle); err != nil {
		return fmt.Errorf("saving bundle: %w", err)
	}

	t0DerivedMATIC, err := s.FindMaticPerToken(ctx, token0.ID)
	if err != nil {
		return err
	}
	token0.DerivedMATIC = graphnode.DecimalPtr(t0DerivedMATIC)
	token0.DerivedUSD = graphnode.DecimalPtr(t0DerivedMATIC.Mul(maticPrice))

	// token1 may price off token0 through the whitelist, so token0's fresh
	// derived price must be in the store before token1 is derived
	if err := s.Save(ctx, token0); err != nil {
		return fmt.Errorf("saving token %s: %w", token0.ID, err)
	}

	t1DerivedMATIC, err := s.FindMaticPerToken(ctx, token1.ID)
	if err != nil {
		return err
	}
	token1.DerivedMATIC = graphnode.DecimalPtr(t1DerivedMATIC)
	token1.DerivedUSD = graphnode.DecimalPtr(t1DerivedMATIC.Mul(maticPrice))

	if err := s.Save(ctx, token1); err != nil {
		return fmt.Errorf("saving token %s: %w", token1.ID, err)
	}

	s.log.Debug("derived token prices",
		zap.Stringer("token0", t0DerivedMATIC),
		zap.Stringer("token1", t1DerivedMATIC),
		zap.Stringer("matic_price", maticPrice),
	)

	// tracked liquidity is zero when neither token is whitelisted or the
	// MATIC price is unknown
	trackedLiquidityMATIC := decimal.Zero
	if !maticPrice.IsZero() {
		trackedLiquidityMATIC = s.getTrackedLiquidityUSD(bundle, pair.Reserve0, token0, pair.Reserve1, token1).Div(maticPrice)
	}

	// use derived amounts within pair
	pair.TrackedReserveMATIC = trackedLiquidityMATIC
	pair.ReserveMATIC = pair.Reserve0.Mul(t0DerivedMATIC).
		Add(pair.Reserve1.Mul(t1DerivedMATIC))
	pair.ReserveUSD = pair.ReserveMATIC.Mul(maticPrice)

	// use tracked amounts globally
	factory.TotalLiquidityMATIC = factory.TotalLiquidityMATIC.Add(trackedLiquidityMATIC)
	factory.TotalLiquidityUSD = factory.TotalLiquidityMATIC.Mul(maticPrice)

	token0.TotalLiquidity = token0.TotalLiquidity.Add(pair.Reserve0)
	token1.TotalLiquidity = token1.TotalLiquidity.Add(pair.Reserve1)

	if err := s.Save(ctx, pair); err != nil {
		return fmt.Errorf("saving pair %s: %w", pair.ID, err)
	}
	if err := s.Save(ctx, factory); err != nil {
		return fmt.Errorf("saving factory: %w", err)
	}
	if err := s.Save(ctx, token0); err != nil {
		return fmt.Errorf("saving token %s: %w", token0.ID, err)
	}
	if err := s.Save(ctx, token1); err != nil {
		return fmt.Errorf("saving token %s: %w", token1.ID, err)
	}

	return nil
}
