package exchange

import (
	"context"
	"fmt"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (s *Subgraph) HandlePairSwapEvent(ctx context.Context, ev *PairSwapEvent) error {
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

	amount0In := graphnode.ConvertTokenToDecimal(ev.Amount0In, token0.Decimals)
	amount1In := graphnode.ConvertTokenToDecimal(ev.Amount1In, token1.Decimals)
	amount0Out := graphnode.ConvertTokenToDecimal(ev.Amount0Out, token0.Decimals)
	amount1Out := graphnode.ConvertTokenToDecimal(ev.Amount1Out, token1.Decimals)

	// totals for volume updates
	amount0Total := amount0Out.Add(amount0In)
	amount1Total := amount1Out.Add(amount1In)

	bundle := NewBundle(BundleID)
	if err := s.Load(ctx, bundle); err != nil {
		return fmt.Errorf("loading bundle: %w", err)
	}
	if !bundle.Exists() {
		s.log.Error("bundle not found")
		return nil
	}

	// both legs of a swap carry the same economic value, so the derived
	// amount is the average of the two sides
	derivedAmountMATIC := decimal.Zero
	if token0.DerivedMATIC != nil && token1.DerivedMATIC != nil {
		derivedAmountMATIC = token1.DerivedMATIC.Mul(amount1Total).
			Add(token0.DerivedMATIC.Mul(amount0Total)).
			Div(graphnode.TwoDecimal)
	}
	derivedAmountUSD := derivedAmountMATIC.Mul(bundle.MaticPrice)

	// only accounts for volume through whitelisted tokens
	trackedAmountUSD := s.getTrackedVolumeUSD(bundle, amount0Total, token0, amount1Total, token1)

	trackedAmountMATIC := decimal.Zero
	if !bundle.MaticPrice.IsZero() {
		trackedAmountMATIC = trackedAmountUSD.Div(bundle.MaticPrice)
	}

	token0.TradeVolume = token0.TradeVolume.Add(amount0In.Add(amount0Out))
	token0.TradeVolumeUSD = token0.TradeVolumeUSD.Add(trackedAmountUSD)
	token0.UntrackedVolumeUSD = token0.UntrackedVolumeUSD.Add(derivedAmountUSD)

	token1.TradeVolume = token1.TradeVolume.Add(amount1In.Add(amount1Out))
	token1.TradeVolumeUSD = token1.TradeVolumeUSD.Add(trackedAmountUSD)
	token1.UntrackedVolumeUSD = token1.UntrackedVolumeUSD.Add(derivedAmountUSD)

	token0.TotalTransactions++
	token1.TotalTransactions++

	// pair volumes use the tracked amount when the whitelist can price it
	pair.VolumeUSD = pair.VolumeUSD.Add(trackedAmountUSD)
	pair.VolumeToken0 = pair.VolumeToken0.Add(amount0Total)
	pair.VolumeToken1 = pair.VolumeToken1.Add(amount1Total)
	pair.UntrackedVolumeUSD = pair.UntrackedVolumeUSD.Add(derivedAmountUSD)
	pair.TotalTransactions++

	factory := NewAthleteXFactory(s.config.FactoryAddress)
	if err := s.Load(ctx, factory); err != nil {
		return fmt.Errorf("loading factory: %w", err)
	}
	if !factory.Exists() {
		s.log.Error("factory not found", zap.String("factory", s.config.FactoryAddress))
		return nil
	}

	factory.TotalVolumeUSD = factory.TotalVolumeUSD.Add(trackedAmountUSD)
	factory.TotalVolumeMATIC = factory.TotalVolumeMATIC.Add(trackedAmountMATIC)
	factory.UntrackedVolumeUSD = factory.UntrackedVolumeUSD.Add(derivedAmountUSD)
	factory.TotalTransactions++

	if err := s.Save(ctx, pair); err != nil {
		return fmt.Errorf("saving pair %s: %w", pair.ID, err)
	}
	if err := s.Save(ctx, token0); err != nil {
		return fmt.Errorf("saving token %s: %w", token0.ID, err)
	}
	if err := s.Save(ctx, token1); err != nil {
		return fmt.Errorf("saving token %s: %w", token1.ID, err)
	}
	if err := s.Save(ctx, factory); err != nil {
		return fmt.Errorf("saving factory: %w", err)
	}

	trx := NewTransaction(ev.TransactionHash.Pretty())
	if err := s.Load(ctx, trx); err != nil {
		return fmt.Errorf("loading transaction %s: %w", trx.ID, err)
	}
	if !trx.Exists() {
		trx.Block = int64(ev.BlockNumber)
		trx.Timestamp = ev.Timestamp
	}

	swap := NewSwap(fmt.Sprintf("%s-%d", trx.ID, len(trx.Swaps)))
	swap.Transaction = trx.ID
	swap.Pair = pair.ID
	swap.Timestamp = trx.Timestamp
	swap.Sender = ev.Sender.Pretty()
	swap.From = ev.TransactionFrom.Pretty()
	swap.To = ev.To.Pretty()
	swap.Amount0In = amount0In
	swap.Amount1In = amount1In
	swap.Amount0Out = amount0Out
	swap.Amount1Out = amount1Out
	swap.LogIndex = ev.LogIndex

	// the untracked estimate is only a display fallback when the whitelist
	// prices the trade at exactly zero
	if trackedAmountUSD.IsZero() {
		swap.AmountUSD = derivedAmountUSD
	} else {
		swap.AmountUSD = trackedAmountUSD
	}

	if err := s.Save(ctx, swap); err != nil {
		return fmt.Errorf("saving swap %s: %w", swap.ID, err)
	}

	trx.Swaps = append(trx.Swaps, swap.ID)
	if err := s.Save(ctx, trx); err != nil {
		return fmt.Errorf("saving transaction %s: %w", trx.ID, err)
	}

	pairDayData, err := s.UpdatePairDayData(ctx, ev.EventBase)
	if err != nil {
		return err
	}
	pairHourData, err := s.UpdatePairHourData(ctx, ev.EventBase)
	if err != nil {
		return err
	}
	dayData, err := s.UpdateAthleteXDayData(ctx, ev.EventBase)
	if err != nil {
		return err
	}
	token0DayData, err := s.UpdateTokenDayData(ctx, token0, bundle, ev.EventBase)
	if err != nil {
		return err
	}
	token1DayData, err := s.UpdateTokenDayData(ctx, token1, bundle, ev.EventBase)
	if err != nil {
		return err
	}

	dayData.DailyVolumeUSD = dayData.DailyVolumeUSD.Add(trackedAmountUSD)
	dayData.DailyVolumeMATIC = dayData.DailyVolumeMATIC.Add(trackedAmountMATIC)
	dayData.DailyVolumeUntracked = dayData.DailyVolumeUntracked.Add(derivedAmountUSD)
	if err := s.Save(ctx, dayData); err != nil {
		return err
	}

	pairDayData.DailyVolumeToken0 = pairDayData.DailyVolumeToken0.Add(amount0Total)
	pairDayData.DailyVolumeToken1 = pairDayData.DailyVolumeToken1.Add(amount1Total)
	pairDayData.DailyVolumeUSD = pairDayData.DailyVolumeUSD.Add(trackedAmountUSD)
	if err := s.Save(ctx, pairDayData); err != nil {
		return err
	}

	pairHourData.HourlyVolumeToken0 = pairHourData.HourlyVolumeToken0.Add(amount0Total)
	pairHourData.HourlyVolumeToken1 = pairHourData.HourlyVolumeToken1.Add(amount1Total)
	pairHourData.HourlyVolumeUSD = pairHourData.HourlyVolumeUSD.Add(trackedAmountUSD)
	if err := s.Save(ctx, pairHourData); err != nil {
		return err
	}

	token0DayData.DailyVolumeToken = token0DayData.DailyVolumeToken.Add(amount0Total)
	token0DayData.DailyVolumeMATIC = token0DayData.DailyVolumeMATIC.Add(
		amount0Total.Mul(graphnode.DerefDecimal(token0.DerivedMATIC)))
	token0DayData.DailyVolumeUSD = token0DayData.DailyVolumeUSD.Add(
		amount0Total.Mul(graphnode.DerefDecimal(token0.DerivedMATIC)).Mul(bundle.MaticPrice))
	if err := s.Save(ctx, token0DayData); err != nil {
		return err
	}

	token1DayData.DailyVolumeToken = token1DayData.DailyVolumeToken.Add(amount1Total)
	token1DayData.DailyVolumeMATIC = token1DayData.DailyVolumeMATIC.Add(
		amount1Total.Mul(graphnode.DerefDecimal(token1.DerivedMATIC)))
	token1DayData.DailyVolumeUSD = token1DayData.DailyVolumeUSD.Add(
		amount1Total.Mul(graphnode.DerefDecimal(token1.DerivedMATIC)).Mul(bundle.MaticPrice))
	if err := s.Save(ctx, token1DayData); err != nil {
		return err
	}

	return nil
}
