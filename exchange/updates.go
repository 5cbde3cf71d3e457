package exchange

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
)

func (s *Subgraph) UpdateAthleteXDayData(ctx context.Context, ev EventBase) (*AthleteXDayData, error) {
	factory := NewAthleteXFactory(s.config.FactoryAddress)
	if err := s.Load(ctx, factory); err != nil {
		return nil, fmt.Errorf("loading factory: %w", err)
	}

	dayID := ev.Timestamp / 86400
	dayStartTimestamp := dayID * 86400

	dayData := NewAthleteXDayData(strconv.FormatInt(dayID, 10))
	if err := s.Load(ctx, dayData); err != nil {
		return nil, err
	}
	if !dayData.Exists() {
		dayData.Date = dayStartTimestamp
	}

	dayData.TotalLiquidityUSD = factory.TotalLiquidityUSD
	dayData.TotalLiquidityMATIC = factory.TotalLiquidityMATIC
	dayData.TotalTransactions = factory.TotalTransactions

	if err := s.Save(ctx, dayData); err != nil {
		return nil, err
	}

	return dayData, nil
}

func (s *Subgraph) UpdatePairDayData(ctx context.Context, ev EventBase) (*PairDayData, error) {
	pairAddress := ev.LogAddress.Pretty()
	dayID := ev.Timestamp / 86400
	dayStartTimestamp := dayID * 86400
	dayPairID := fmt.Sprintf("%s-%d", pairAddress, dayID)

	pair := NewPair(pairAddress)
	if err := s.Load(ctx, pair); err != nil {
		return nil, fmt.Errorf("loading pair %s: %w", pairAddress, err)
	}

	pairDayData := NewPairDayData(dayPairID)
	if err := s.Load(ctx, pairDayData); err != nil {
		return nil, fmt.Errorf("loading pair_day_data %s: %w", dayPairID, err)
	}
	if !pairDayData.Exists() {
		pairDayData.Date = dayStartTimestamp
		pairDayData.PairAddress = pairAddress
		pairDayData.Token0 = pair.Token0
		pairDayData.Token1 = pair.Token1
	}

	pairDayData.TotalSupply = pair.TotalSupply
	pairDayData.Reserve0 = pair.Reserve0
	pairDayData.Reserve1 = pair.Reserve1
	pairDayData.ReserveUSD = pair.ReserveUSD
	pairDayData.DailyTxns++

	if err := s.Save(ctx, pairDayData); err != nil {
		return nil, fmt.Errorf("saving pair_day_data %s: %w", dayPairID, err)
	}

	return pairDayData, nil
}

func (s *Subgraph) UpdatePairHourData(ctx context.Context, ev EventBase) (*PairHourData, error) {
	pairAddress := ev.LogAddress.Pretty()
	hourID := ev.Timestamp / 3600
	hourStartUnix := hourID * 3600
	hourPairID := fmt.Sprintf("%s-%d", pairAddress, hourID)

	pair := NewPair(pairAddress)
	if err := s.Load(ctx, pair); err != nil {
		return nil, fmt.Errorf("loading pair %s: %w", pairAddress, err)
	}

	pairHourData := NewPairHourData(hourPairID)
	if err := s.Load(ctx, pairHourData); err != nil {
		return nil, fmt.Errorf("loading pair_hour_data %s: %w", hourPairID, err)
	}
	if !pairHourData.Exists() {
		pairHourData.HourStartUnix = hourStartUnix
		pairHourData.Pair = pairAddress
	}

	pairHourData.Reserve0 = pair.Reserve0
	pairHourData.Reserve1 = pair.Reserve1
	pairHourData.ReserveUSD = pair.ReserveUSD
	pairHourData.HourlyTxns++

	if err := s.Save(ctx, pairHourData); err != nil {
		return nil, fmt.Errorf("saving pair_hour_data %s: %w", hourPairID, err)
	}

	return pairHourData, nil
}

func (s *Subgraph) UpdateTokenDayData(ctx context.Context, token *Token, bundle *Bundle, ev EventBase) (*TokenDayData, error) {
	dayID := ev.Timestamp / 86400
	dayStartTimestamp := dayID * 86400
	tokenDayID := fmt.Sprintf("%s-%d", token.ID, dayID)

	tokenDayData := NewTokenDayData(tokenDayID)
	if err := s.Load(ctx, tokenDayData); err != nil {
		return nil, fmt.Errorf("loading token_day_data %s: %w", tokenDayID, err)
	}
	if !tokenDayData.Exists() {
		tokenDayData.Date = dayStartTimestamp
		tokenDayData.Token = token.ID
	}

	derivedMATIC := graphnode.DerefDecimal(token.DerivedMATIC)

	tokenDayData.PriceUSD = derivedMATIC.Mul(bundle.MaticPrice)
	tokenDayData.TotalLiquidityToken = token.TotalLiquidity
	tokenDayData.TotalLiquidityMATIC = token.TotalLiquidity.Mul(derivedMATIC)
	tokenDayData.TotalLiquidityUSD = tokenDayData.TotalLiquidityMATIC.Mul(bundle.MaticPrice)
	tokenDayData.DailyTxns++

	if err := s.Save(ctx, tokenDayData); err != nil {
		return nil, fmt.Errorf("saving token_day_data %s: %w", tokenDayID, err)
	}

	return tokenDayData, nil
}
