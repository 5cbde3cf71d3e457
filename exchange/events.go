package exchange

import (
	"math/big"

	"github.com/streamingfast/eth-go"
)

// EventBase is the chain context every decoded pair log carries. The hosting
// indexer delivers events one at a time in canonical (block, transaction,
// log) order.
type EventBase struct {
	BlockNumber     uint64      `json:"blockNumber"`
	Timestamp       int64       `json:"timestamp"`
	TransactionHash eth.Hash    `json:"transactionHash"`
	TransactionFrom eth.Address `json:"transactionFrom"`
	LogAddress      eth.Address `json:"logAddress"`
	LogIndex        uint64      `json:"logIndex"`
}

// TokenInfo carries the ERC20 metadata the host already resolved; contract
// calls never happen here.
type TokenInfo struct {
	Address  eth.Address `json:"address"`
	Name     string      `json:"name"`
	Symbol   string      `json:"symbol"`
	Decimals int32       `json:"decimals"`
}

// PairCreatedEvent is the factory's PairCreated log, decoded and enriched
// with both tokens' metadata.
type PairCreatedEvent struct {
	EventBase
	PairAddress eth.Address `json:"pairAddress"`
	Token0      TokenInfo   `json:"token0"`
	Token1      TokenInfo   `json:"token1"`
}

// PairTransferEvent is an ERC20 Transfer on a pair's liquidity-share token.
type PairTransferEvent struct {
	EventBase
	From  eth.Address `json:"from"`
	To    eth.Address `json:"to"`
	Value *big.Int    `json:"value"`
}

// PairSyncEvent reports the pair contract's post-operation reserves.
type PairSyncEvent struct {
	EventBase
	Reserve0 *big.Int `json:"reserve0"`
	Reserve1 *big.Int `json:"reserve1"`
}

// PairMintEvent is the pair contract's own Mint confirmation.
type PairMintEvent struct {
	EventBase
	Sender  eth.Address `json:"sender"`
	Amount0 *big.Int    `json:"amount0"`
	Amount1 *big.Int    `json:"amount1"`
}

// PairBurnEvent is the pair contract's own Burn confirmation.
type PairBurnEvent struct {
	EventBase
	Sender  eth.Address `json:"sender"`
	To      eth.Address `json:"to"`
	Amount0 *big.Int    `json:"amount0"`
	Amount1 *big.Int    `json:"amount1"`
}

// PairSwapEvent carries both legs of a trade.
type PairSwapEvent struct {
	EventBase
	Sender     eth.Address `json:"sender"`
	To         eth.Address `json:"to"`
	Amount0In  *big.Int    `json:"amount0In"`
	Amount1In  *big.Int    `json:"amount1In"`
	Amount0Out *big.Int    `json:"amount0Out"`
	Amount1Out *big.Int    `json:"amount1Out"`
}
