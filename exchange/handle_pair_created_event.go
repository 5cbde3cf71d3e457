package exchange

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// HandlePairCreatedEvent books a newly created pair: the factory and bundle
// singletons on first sight, the two tokens if unseen, and the pair itself.
func (s *Subgraph) HandlePairCreatedEvent(ctx context.Context, ev *PairCreatedEvent) error {
	pairAddress := ev.PairAddress.Pretty()

	s.log.Debug("handling pair created event",
		zap.Uint64("block_num", ev.BlockNumber),
		zap.String("pair", pairAddress),
	)

	factory := NewAthleteXFactory(s.config.FactoryAddress)
	if err := s.Load(ctx, factory); err != nil {
		return fmt.Errorf("loading factory: %w", err)
	}
	if !factory.Exists() {
		bundle := NewBundle(BundleID)
		if err := s.Save(ctx, bundle); err != nil {
			return fmt.Errorf("saving bundle: %w", err)
		}
	}
	factory.TotalPairs++
	if err := s.Save(ctx, factory); err != nil {
		return fmt.Errorf("saving factory: %w", err)
	}

	if err := s.ensureToken(ctx, ev.Token0); err != nil {
		return err
	}
	if err := s.ensureToken(ctx, ev.Token1); err != nil {
		return err
	}

	pair := NewPair(pairAddress)
	if err := s.Load(ctx, pair); err != nil {
		return fmt.Errorf("loading pair %s: %w", pairAddress, err)
	}
	if pair.Exists() {
		s.log.Warn("pair already known", zap.String("pair", pairAddress))
		return nil
	}

	pair.Token0 = ev.Token0.Address.Pretty()
	pair.Token1 = ev.Token1.Address.Pretty()
	pair.Name = ev.Token0.Symbol + "-" + ev.Token1.Symbol
	pair.CreatedAtBlock = int64(ev.BlockNumber)
	pair.CreatedAtTimestamp = ev.Timestamp
	if err := s.Save(ctx, pair); err != nil {
		return fmt.Errorf("saving pair %s: %w", pairAddress, err)
	}

	s.RegisterPair(pair.ID, pair.Token0, pair.Token1)
	return nil
}

func (s *Subgraph) ensureToken(ctx context.Context, info TokenInfo) error {
	token := NewToken(info.Address.Pretty())
	if err := s.Load(ctx, token); err != nil {
		return fmt.Errorf("loading token %s: %w", token.ID, err)
	}
	if token.Exists() {
		return nil
	}

	token.Name = info.Name
	token.Symbol = info.Symbol
	token.Decimals = info.Decimals
	if err := s.Save(ctx, token); err != nil {
		return fmt.Errorf("saving token %s: %w", token.ID, err)
	}
	return nil
}
