package exchange

import (
	"context"
	"fmt"
	"math/big"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"go.uber.org/zap"
)

// The pair contract permanently locks its first 1000 shares at the zero
// address when the pool bootstraps.
var bootstrapLiquidity = big.NewInt(1000)

// Share tokens are minted with a fixed 18 decimals regardless of the
// underlying token decimals.
const shareTokenDecimals = 18

func (s *Subgraph) HandlePairTransferEvent(ctx context.Context, ev *PairTransferEvent) error {
	from := ev.From.Pretty()
	to := ev.To.Pretty()
	trxHash := ev.TransactionHash.Pretty()

	s.log.Debug("handling transfer event",
		zap.Uint64("block_num", ev.BlockNumber),
		zap.String("trx", trxHash),
		zap.String("from", from),
		zap.String("to", to),
	)

	// ignore the bootstrap liquidity lock, it is not a user-visible mint
	if to == ZeroAddress && ev.Value.Cmp(bootstrapLiquidity) == 0 {
		return nil
	}

	// staking or unstaking against a known mining pool, not a liquidity event
	if s.config.IsMiningPool(from) || s.config.IsMiningPool(to) {
		return nil
	}

	if err := s.ensureUser(ctx, from); err != nil {
		return err
	}
	if err := s.ensureUser(ctx, to); err != nil {
		return err
	}

	pair := NewPair(ev.LogAddress.Pretty())
	if err := s.Load(ctx, pair); err != nil {
		return fmt.Errorf("loading pair %s: %w", pair.ID, err)
	}
	if !pair.Exists() {
		s.log.Error("pair not found", zap.String("pair", pair.ID))
		return nil
	}

	// liquidity token amount being transferred
	value := graphnode.ConvertTokenToDecimal(ev.Value, shareTokenDecimals)

	trx := NewTransaction(trxHash)
	if err := s.Load(ctx, trx); err != nil {
		return fmt.Errorf("loading transaction %s: %w", trxHash, err)
	}
	if !trx.Exists() {
		trx.Block = int64(ev.BlockNumber)
		trx.Timestamp = ev.Timestamp
	}

	// mints
	if from == ZeroAddress {
		pair.TotalSupply = pair.TotalSupply.Add(value)
		if err := s.Save(ctx, pair); err != nil {
			return fmt.Errorf("saving pair %s: %w", pair.ID, err)
		}

		if trx.PendingMint == nil {
			mint := NewMint(fmt.Sprintf("%s-%d", trxHash, len(trx.Mints)))
			mint.Transaction = trx.ID
			mint.Pair = pair.ID
			mint.To = to
			mint.Liquidity = value
			mint.Timestamp = trx.Timestamp
			if err := s.Save(ctx, mint); err != nil {
				return fmt.Errorf("saving new mint: %w", err)
			}

			mintID := mint.ID
			trx.Mints = append(trx.Mints, mintID)
			trx.PendingMint = &mintID
		} else {
			// a second zero-origin transfer in the same transaction is the
			// protocol fee mint; fold it into the pending record
			mint := NewMint(*trx.PendingMint)
			if err := s.Load(ctx, mint); err != nil {
				return fmt.Errorf("loading pending mint %s: %w", mint.ID, err)
			}
			if !mint.Exists() {
				s.log.Error("pending mint not found", zap.String("mint", mint.ID))
				return nil
			}

			feeTo := mint.To
			mint.FeeTo = &feeTo
			mint.FeeLiquidity = graphnode.DecimalPtr(mint.Liquidity)
			mint.To = to
			mint.Liquidity = value
			if err := s.Save(ctx, mint); err != nil {
				return fmt.Errorf("saving folded mint %s: %w", mint.ID, err)
			}
		}
	}

	// direct send to the pair precedes the burn proper on MATIC withdrawals
	if to == pair.ID {
		burn := NewBurn(fmt.Sprintf("%s-%d", trxHash, len(trx.Burns)))
		burn.Transaction = trx.ID
		burn.Pair = pair.ID
		burn.Liquidity = value
		burn.Timestamp = trx.Timestamp
		burn.NeedsComplete = true
		burn.Sender = &from
		burn.To = &to
		if err := s.Save(ctx, burn); err != nil {
			return fmt.Errorf("saving burn %s: %w", burn.ID, err)
		}

		trx.Burns = append(trx.Burns, burn.ID)
	}

	// burn
	if to == ZeroAddress && from == pair.ID {
		pair.TotalSupply = pair.TotalSupply.Sub(value)
		if err := s.Save(ctx, pair); err != nil {
			return fmt.Errorf("saving pair %s: %w", pair.ID, err)
		}

		var burn *Burn
		if len(trx.Burns) > 0 {
			currentBurn := NewBurn(trx.Burns[len(trx.Burns)-1])
			if err := s.Load(ctx, currentBurn); err != nil {
				return fmt.Errorf("loading burn %s: %w", currentBurn.ID, err)
			}
			if !currentBurn.Exists() {
				s.log.Error("burn not found", zap.String("burn", currentBurn.ID))
				return nil
			}

			if currentBurn.NeedsComplete {
				burn = currentBurn
			}
		}
		if burn == nil {
			burn = NewBurn(fmt.Sprintf("%s-%d", trxHash, len(trx.Burns)))
			burn.Transaction = trx.ID
			burn.Pair = pair.ID
			burn.Liquidity = value
			burn.Timestamp = trx.Timestamp
		}

		// a mint still pending at burn time is the fee mint belonging to this
		// burn: fold it in and drop the standalone record
		if trx.PendingMint != nil {
			mint := NewMint(*trx.PendingMint)
			if err := s.Load(ctx, mint); err != nil {
				return fmt.Errorf("loading pending mint %s: %w", mint.ID, err)
			}
			if !mint.Exists() {
				s.log.Error("pending mint not found", zap.String("mint", mint.ID))
				return nil
			}

			feeTo := mint.To
			burn.FeeTo = &feeTo
			burn.FeeLiquidity = graphnode.DecimalPtr(mint.Liquidity)
			if err := s.Remove(ctx, mint); err != nil {
				return fmt.Errorf("removing folded mint %s: %w", mint.ID, err)
			}

			trx.Mints = trx.Mints[:len(trx.Mints)-1]
			trx.PendingMint = nil
		}

		if err := s.Save(ctx, burn); err != nil {
			return fmt.Errorf("saving burn %s: %w", burn.ID, err)
		}

		if burn.NeedsComplete {
			// reusing the record appended by the direct-send step above
			trx.Burns[len(trx.Burns)-1] = burn.ID
		} else {
			trx.Burns = append(trx.Burns, burn.ID)
		}
	}

	if from != ZeroAddress && from != pair.ID {
		position, err := s.getOrCreateLiquidityPosition(ctx, pair, from)
		if err != nil {
			return err
		}
		position.LiquidityTokenBalance = position.LiquidityTokenBalance.Sub(value)
		if err := s.Save(ctx, position); err != nil {
			return fmt.Errorf("saving position %s: %w", position.ID, err)
		}
		if err := s.createLiquiditySnapshot(ctx, position, ev.EventBase); err != nil {
			return err
		}
	}

	if to != ZeroAddress && to != pair.ID {
		position, err := s.getOrCreateLiquidityPosition(ctx, pair, to)
		if err != nil {
			return err
		}
		position.LiquidityTokenBalance = position.LiquidityTokenBalance.Add(value)
		if err := s.Save(ctx, position); err != nil {
			return fmt.Errorf("saving position %s: %w", position.ID, err)
		}
		if err := s.createLiquiditySnapshot(ctx, position, ev.EventBase); err != nil {
			return err
		}
	}

	if err := s.Save(ctx, trx); err != nil {
		return fmt.Errorf("saving transaction %s: %w", trx.ID, err)
	}

	return nil
}
