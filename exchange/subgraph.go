package exchange

import (
	"context"
	"fmt"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode/storage"
	"go.uber.org/zap"
)

// Subgraph is the event-to-ledger reconciliation engine. The hosting indexer
// calls HandleEvent once per decoded pair log, in canonical order; all state
// lives in the entity store.
type Subgraph struct {
	store  storage.Store
	config *Config
	log    *zap.Logger

	tokensToPair map[string]string
}

func New(store storage.Store, config *Config) *Subgraph {
	return &Subgraph{
		store:        store,
		config:       config,
		log:          zlog,
		tokensToPair: make(map[string]string),
	}
}

// Init primes the token-pair lookup from the pairs already persisted, so
// price derivation can resolve reference pairs right after a restart.
func (s *Subgraph) Init(ctx context.Context) error {
	pairs, err := s.store.LoadAllDistinct(ctx, &Pair{})
	if err != nil {
		return fmt.Errorf("loading known pairs: %w", err)
	}

	for _, ent := range pairs {
		pair := ent.(*Pair)
		s.tokensToPair[generateTokensKey(pair.Token0, pair.Token1)] = pair.ID
	}

	s.log.Info("loaded tracked token pairs", zap.Int("count", len(s.tokensToPair)))
	return nil
}

// RegisterPair records a pair discovered by the host (factory PairCreated);
// pool discovery itself happens outside this engine.
func (s *Subgraph) RegisterPair(pairAddress, token0, token1 string) {
	s.tokensToPair[generateTokensKey(token0, token1)] = pairAddress
}

func (s *Subgraph) pairAddressForTokens(token0, token1 string) string {
	return s.tokensToPair[generateTokensKey(token0, token1)]
}

func generateTokensKey(token0, token1 string) string {
	if token0 > token1 {
		return token1 + token0
	}
	return token0 + token1
}

// HandleEvent dispatches one decoded pair log to its handler.
func (s *Subgraph) HandleEvent(ctx context.Context, event interface{}) error {
	switch ev := event.(type) {
	case *PairCreatedEvent:
		return s.HandlePairCreatedEvent(ctx, ev)
	case *PairTransferEvent:
		return s.HandlePairTransferEvent(ctx, ev)
	case *PairSyncEvent:
		return s.HandlePairSyncEvent(ctx, ev)
	case *PairMintEvent:
		return s.HandlePairMintEvent(ctx, ev)
	case *PairBurnEvent:
		return s.HandlePairBurnEvent(ctx, ev)
	case *PairSwapEvent:
		return s.HandlePairSwapEvent(ctx, ev)
	default:
		return fmt.Errorf("no handler for event type %T", event)
	}
}

func (s *Subgraph) Load(ctx context.Context, entity graphnode.Entity) error {
	return s.store.Load(ctx, entity)
}

func (s *Subgraph) Save(ctx context.Context, entity graphnode.Entity) error {
	return s.store.Save(ctx, entity)
}

func (s *Subgraph) Remove(ctx context.Context, entity graphnode.Entity) error {
	return s.store.Delete(ctx, entity)
}
