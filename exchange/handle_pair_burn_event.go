package exchange

import (
	"context"
	"fmt"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// HandlePairBurnEvent completes the last burn of the transaction with the
// token amounts the pair contract reports.
func (s *Subgraph) HandlePairBurnEvent(ctx context.Context, ev *PairBurnEvent) error {
	trx := NewTransaction(ev.TransactionHash.Pretty())
	if err := s.Load(ctx, trx); err != nil {
		return fmt.Errorf("loading transaction %s: %w", trx.ID, err)
	}
	if !trx.Exists() {
		return nil
	}
	if len(trx.Burns) == 0 {
		s.log.Error("no burns in transaction", zap.String("trx", trx.ID))
		return nil
	}

	burn := NewBurn(trx.Burns[len(trx.Burns)-1])
	if err := s.Load(ctx, burn); err != nil {
		return fmt.Errorf("loading burn %s: %w", burn.ID, err)
	}
	if !burn.Exists() {
		s.log.Error("burn not found", zap.String("burn", burn.ID))
		return nil
	}

	pair := NewPair(ev.LogAddress.Pretty())
	if err := s.Load(ctx, pair); err != nil {
		return fmt.Errorf("loading pair %s: %w", pair.ID, err)
	}
	if !pair.Exists() {
		s.log.Error("pair not found", zap.String("pair", pair.ID))
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

	token0Amount := graphnode.ConvertTokenToDecimal(ev.Amount0, token0.Decimals)
	token1Amount := graphnode.ConvertTokenToDecimal(ev.Amount1, token1.Decimals)

	token0.TotalTransactions++
	token1.TotalTransactions++

	bundle := NewBundle(BundleID)
	if err := s.Load(ctx, bundle); err != nil {
		return fmt.Errorf("loading bundle: %w", err)
	}
	if !bundle.Exists() {
		s.log.Error("bundle not found")
		return nil
	}

	amountTotalUSD := decimal.Zero
	if token0.DerivedMATIC != nil && token1.DerivedMATIC != nil {
		amountTotalUSD = token1.DerivedMATIC.Mul(token1Amount).
			Add(token0.DerivedMATIC.Mul(token0Amount)).
			Mul(bundle.MaticPrice)
	}

	factory.TotalTransactions++
	pair.TotalTransactions++

	if err := s.Save(ctx, token0); err != nil {
		return fmt.Errorf("saving token %s: %w", token0.ID, err)
	}
	if err := s.Save(ctx, token1); err != nil {
		return fmt.Errorf("saving token %s: %w", token1.ID, err)
	}
	if err := s.Save(ctx, pair); err != nil {
		return fmt.Errorf("saving pair %s: %w", pair.ID, err)
	}
	if err := s.Save(ctx, factory); err != nil {
		return fmt.Errorf("saving factory: %w", err)
	}

	logIndex := ev.LogIndex
	burn.Amount0 = graphnode.DecimalPtr(token0Amount)
	burn.Amount1 = graphnode.DecimalPtr(token1Amount)
	burn.LogIndex = &logIndex
	burn.AmountUSD = graphnode.DecimalPtr(amountTotalUSD)
	burn.NeedsComplete = false
	if err := s.Save(ctx, burn); err != nil {
		return fmt.Errorf("saving burn %s: %w", burn.ID, err)
	}

	if burn.Sender != nil {
		position, err := s.getOrCreateLiquidityPosition(ctx, pair, *burn.Sender)
		if err != nil {
			return err
		}
		if err := s.createLiquiditySnapshot(ctx, position, ev.EventBase); err != nil {
			return err
		}
	}

	if _, err := s.UpdatePairDayData(ctx, ev.EventBase); err != nil {
		return err
	}
	if _, err := s.UpdatePairHourData(ctx, ev.EventBase); err != nil {
		return err
	}
	if _, err := s.UpdateAthleteXDayData(ctx, ev.EventBase); err != nil {
		return err
	}
	if _, err := s.UpdateTokenDayData(ctx, token0, bundle, ev.EventBase); err != nil {
		return err
	}
	if _, err := s.UpdateTokenDayData(ctx, token1, bundle, ev.EventBase); err != nil {
		return err
	}

	return nil
}
