package exchange

import (
	"context"
	"fmt"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"go.uber.org/zap"
)

func (s *Subgraph) ensureUser(ctx context.Context, address string) error {
	user := NewUser(address)
	if err := s.Load(ctx, user); err != nil {
		return fmt.Errorf("loading user %s: %w", address, err)
	}
	if user.Exists() {
		return nil
	}
	if err := s.Save(ctx, user); err != nil {
		return fmt.Errorf("saving user %s: %w", address, err)
	}
	return nil
}

func (s *Subgraph) getOrCreateLiquidityPosition(ctx context.Context, pair *Pair, userAddress string) (*LiquidityPosition, error) {
	position := NewLiquidityPosition(fmt.Sprintf("%s-%s", pair.ID, userAddress))
	if err := s.Load(ctx, position); err != nil {
		return nil, fmt.Errorf("loading position %s: %w", position.ID, err)
	}
	if !position.Exists() {
		position.Pair = pair.ID
		position.User = userAddress
		if err := s.Save(ctx, position); err != nil {
			return nil, fmt.Errorf("saving position %s: %w", position.ID, err)
		}
	}
	return position, nil
}

// createLiquiditySnapshot records the position and the pair's pricing context
// at the block where the balance changed.
func (s *Subgraph) createLiquiditySnapshot(ctx context.Context, position *LiquidityPosition, ev EventBase) error {
	bundle := NewBundle(BundleID)
	if err := s.Load(ctx, bundle); err != nil {
		return fmt.Errorf("loading bundle: %w", err)
	}

	pair := NewPair(position.Pair)
	if err := s.Load(ctx, pair); err != nil {
		return fmt.Errorf("loading pair %s: %w", position.Pair, err)
	}
	if !pair.Exists() {
		s.log.Error("pair not found for snapshot", zap.String("pair", position.Pair))
		return nil
	}

	token0 := NewToken(pair.Token0)
	if err := s.Load(ctx, token0); err != nil {
		return fmt.Errorf("loading token %s: %w", pair.Token0, err)
	}
	token1 := NewToken(pair.Token1)
	if err := s.Load(ctx, token1); err != nil {
		return fmt.Errorf("loading token %s: %w", pair.Token1, err)
	}

	snapshot := NewLiquidityPositionSnapshot(fmt.Sprintf("%s-%d", position.ID, ev.Timestamp))
	snapshot.LiquidityPosition = position.ID
	snapshot.User = position.User
	snapshot.Pair = position.Pair
	snapshot.Timestamp = ev.Timestamp
	snapshot.Block = int64(ev.BlockNumber)
	snapshot.Token0PriceUSD = graphnode.DerefDecimal(token0.DerivedMATIC).Mul(bundle.MaticPrice)
	snapshot.Token1PriceUSD = graphnode.DerefDecimal(token1.DerivedMATIC).Mul(bundle.MaticPrice)
	snapshot.Reserve0 = pair.Reserve0
	snapshot.Reserve1 = pair.Reserve1
	snapshot.ReserveUSD = pair.ReserveUSD
	snapshot.LiquidityTokenTotalSupply = pair.TotalSupply
	snapshot.LiquidityTokenBalance = position.LiquidityTokenBalance

	if err := s.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", snapshot.ID, err)
	}
	return nil
}
