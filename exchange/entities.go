package exchange

import (
	graphnode "github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
	"github.com/shopspring/decimal"
)

const ZeroAddress = "0x0000000000000000000000000000000000000000"

// BundleID is the singleton row holding the current MATIC/USD price.
const BundleID = "1"

// Definition registers every entity table the subgraph writes.
var Definition = graphnode.NewRegistry(
	&AthleteXFactory{},
	&Bundle{},
	&Token{},
	&Pair{},
	&Transaction{},
	&Mint{},
	&Burn{},
	&Swap{},
	&User{},
	&LiquidityPosition{},
	&LiquidityPositionSnapshot{},
	&AthleteXDayData{},
	&PairDayData{},
	&PairHourData{},
	&TokenDayData{},
)

// AthleteXFactory
type AthleteXFactory struct {
	graphnode.Base
	TotalPairs          int64           `json:"totalPairs" db:"total_pairs"`
	TotalTransactions   int64           `json:"totalTransactions" db:"total_transactions"`
	TotalVolumeMATIC    decimal.Decimal `json:"totalVolumeMATIC" db:"total_volume_matic"`
	TotalVolumeUSD      decimal.Decimal `json:"totalVolumeUSD" db:"total_volume_usd"`
	UntrackedVolumeUSD  decimal.Decimal `json:"untrackedVolumeUSD" db:"untracked_volume_usd"`
	TotalLiquidityMATIC decimal.Decimal `json:"totalLiquidityMATIC" db:"total_liquidity_matic"`
	TotalLiquidityUSD   decimal.Decimal `json:"totalLiquidityUSD" db:"total_liquidity_usd"`
}

func NewAthleteXFactory(id string) *AthleteXFactory {
	return &AthleteXFactory{Base: graphnode.NewBase(id)}
}

// Bundle
type Bundle struct {
	graphnode.Base
	MaticPrice decimal.Decimal `json:"maticPrice" db:"matic_price"`
}

func NewBundle(id string) *Bundle {
	return &Bundle{Base: graphnode.NewBase(id)}
}

// Token
type Token struct {
	graphnode.Base
	Name               string           `json:"name" db:"name"`
	Symbol             string           `json:"symbol" db:"symbol"`
	Decimals           int32            `json:"decimals" db:"decimals"`
	TradeVolume        decimal.Decimal  `json:"tradeVolume" db:"trade_volume"`
	TradeVolumeUSD     decimal.Decimal  `json:"tradeVolumeUSD" db:"trade_volume_usd"`
	UntrackedVolumeUSD decimal.Decimal  `json:"untrackedVolumeUSD" db:"untracked_volume_usd"`
	TotalTransactions  int64            `json:"totalTransactions" db:"total_transactions"`
	TotalLiquidity     decimal.Decimal  `json:"totalLiquidity" db:"total_liquidity"`
	DerivedMATIC       *decimal.Decimal `json:"derivedMATIC,omitempty" db:"derived_matic,nullable"`
	DerivedUSD         *decimal.Decimal `json:"derivedUSD,omitempty" db:"derived_usd,nullable"`
}

func NewToken(id string) *Token {
	return &Token{Base: graphnode.NewBase(id)}
}

// Pair
type Pair struct {
	graphnode.Base
	Name                string          `json:"name" db:"name"`
	Token0              string          `json:"token0" db:"token_0"`
	Token1              string          `json:"token1" db:"token_1"`
	Reserve0            decimal.Decimal `json:"reserve0" db:"reserve_0"`
	Reserve1            decimal.Decimal `json:"reserve1" db:"reserve_1"`
	TotalSupply         decimal.Decimal `json:"totalSupply" db:"total_supply"`
	ReserveMATIC        decimal.Decimal `json:"reserveMATIC" db:"reserve_matic"`
	ReserveUSD          decimal.Decimal `json:"reserveUSD" db:"reserve_usd"`
	TrackedReserveMATIC decimal.Decimal `json:"trackedReserveMATIC" db:"tracked_reserve_matic"`
	Token0Price         decimal.Decimal `json:"token0Price" db:"token_0_price"`
	Token1Price         decimal.Decimal `json:"token1Price" db:"token_1_price"`
	VolumeToken0        decimal.Decimal `json:"volumeToken0" db:"volume_token_0"`
	VolumeToken1        decimal.Decimal `json:"volumeToken1" db:"volume_token_1"`
	VolumeUSD           decimal.Decimal `json:"volumeUSD" db:"volume_usd"`
	UntrackedVolumeUSD  decimal.Decimal `json:"untrackedVolumeUSD" db:"untracked_volume_usd"`
	TotalTransactions   int64           `json:"totalTransactions" db:"total_transactions"`
	CreatedAtBlock      int64           `json:"createdAtBlock" db:"created_at_block"`
	CreatedAtTimestamp  int64           `json:"createdAtTimestamp" db:"created_at_timestamp"`
}

func NewPair(id string) *Pair {
	return &Pair{Base: graphnode.NewBase(id)}
}

// Transaction groups the logical mint/burn/swap records reconstructed within
// one on-chain transaction. PendingMint points at the one mint, if any, that
// has not yet been confirmed by the pair contract's Mint event; it always
// references the last element of Mints.
type Transaction struct {
	graphnode.Base
	Block       int64    `json:"block" db:"block"`
	Timestamp   int64    `json:"timestamp" db:"timestamp"`
	Mints       []string `json:"mints" db:"mints"`
	Burns       []string `json:"burns" db:"burns"`
	Swaps       []string `json:"swaps" db:"swaps"`
	PendingMint *string  `json:"pendingMint,omitempty" db:"pending_mint,nullable"`
}

func NewTransaction(id string) *Transaction {
	return &Transaction{Base: graphnode.NewBase(id)}
}

// Mint is a logical liquidity add. It is created pending from the share-token
// Transfer and completed (sender and token amounts filled) by the pair
// contract's Mint event.
type Mint struct {
	graphnode.Base
	Transaction  string           `json:"transaction" db:"transaction"`
	Pair         string           `json:"pair" db:"pair"`
	To           string           `json:"to" db:"to"`
	Liquidity    decimal.Decimal  `json:"liquidity" db:"liquidity"`
	Timestamp    int64            `json:"timestamp" db:"timestamp"`
	Sender       *string          `json:"sender,omitempty" db:"sender,nullable"`
	Amount0      *decimal.Decimal `json:"amount0,omitempty" db:"amount_0,nullable"`
	Amount1      *decimal.Decimal `json:"amount1,omitempty" db:"amount_1,nullable"`
	LogIndex     *uint64          `json:"logIndex,omitempty" db:"log_index,nullable"`
	AmountUSD    *decimal.Decimal `json:"amountUSD,omitempty" db:"amount_usd,nullable"`
	FeeTo        *string          `json:"feeTo,omitempty" db:"fee_to,nullable"`
	FeeLiquidity *decimal.Decimal `json:"feeLiquidity,omitempty" db:"fee_liquidity,nullable"`
}

func NewMint(id string) *Mint {
	return &Mint{Base: graphnode.NewBase(id)}
}

// Burn is a logical liquidity remove. NeedsComplete is true only between the
// direct share-token transfer to the pair and the burn transfer to the zero
// address; the Burn confirmation event clears it.
type Burn struct {
	graphnode.Base
	Transaction   string           `json:"transaction" db:"transaction"`
	Pair          string           `json:"pair" db:"pair"`
	Liquidity     decimal.Decimal  `json:"liquidity" db:"liquidity"`
	Timestamp     int64            `json:"timestamp" db:"timestamp"`
	NeedsComplete bool             `json:"needsComplete" db:"needs_complete"`
	Sender        *string          `json:"sender,omitempty" db:"sender,nullable"`
	To            *string          `json:"to,omitempty" db:"to,nullable"`
	Amount0       *decimal.Decimal `json:"amount0,omitempty" db:"amount_0,nullable"`
	Amount1       *decimal.Decimal `json:"amount1,omitempty" db:"amount_1,nullable"`
	LogIndex      *uint64          `json:"logIndex,omitempty" db:"log_index,nullable"`
	AmountUSD     *decimal.Decimal `json:"amountUSD,omitempty" db:"amount_usd,nullable"`
	FeeTo         *string          `json:"feeTo,omitempty" db:"fee_to,nullable"`
	FeeLiquidity  *decimal.Decimal `json:"feeLiquidity,omitempty" db:"fee_liquidity,nullable"`
}

func NewBurn(id string) *Burn {
	return &Burn{Base: graphnode.NewBase(id)}
}

// Swap is immutable once created.
type Swap struct {
	graphnode.Base
	Transaction string          `json:"transaction" db:"transaction"`
	Pair        string          `json:"pair" db:"pair"`
	Sender      string          `json:"sender" db:"sender"`
	From        string          `json:"from" db:"from"`
	To          string          `json:"to" db:"to"`
	Amount0In   decimal.Decimal `json:"amount0In" db:"amount_0_in"`
	Amount1In   decimal.Decimal `json:"amount1In" db:"amount_1_in"`
	Amount0Out  decimal.Decimal `json:"amount0Out" db:"amount_0_out"`
	Amount1Out  decimal.Decimal `json:"amount1Out" db:"amount_1_out"`
	AmountUSD   decimal.Decimal `json:"amountUSD" db:"amount_usd"`
	LogIndex    uint64          `json:"logIndex" db:"log_index"`
	Timestamp   int64           `json:"timestamp" db:"timestamp"`
}

func NewSwap(id string) *Swap {
	return &Swap{Base: graphnode.NewBase(id)}
}

// User
type User struct {
	graphnode.Base
	UsdSwapped decimal.Decimal `json:"usdSwapped" db:"usd_swapped"`
}

func NewUser(id string) *User {
	return &User{Base: graphnode.NewBase(id)}
}

// LiquidityPosition tracks a user's share-token balance in one pair,
// id "<pair>-<user>".
type LiquidityPosition struct {
	graphnode.Base
	User                  string          `json:"user" db:"user"`
	Pair                  string          `json:"pair" db:"pair"`
	LiquidityTokenBalance decimal.Decimal `json:"liquidityTokenBalance" db:"liquidity_token_balance"`
}

func NewLiquidityPosition(id string) *LiquidityPosition {
	return &LiquidityPosition{Base: graphnode.NewBase(id)}
}

// LiquidityPositionSnapshot freezes a position and the pair's pricing context
// at the block where the balance changed, id "<position>-<timestamp>".
type LiquidityPositionSnapshot struct {
	graphnode.Base
	LiquidityPosition         string          `json:"liquidityPosition" db:"liquidity_position"`
	User                      string          `json:"user" db:"user"`
	Pair                      string          `json:"pair" db:"pair"`
	Timestamp                 int64           `json:"timestamp" db:"timestamp"`
	Block                     int64           `json:"block" db:"block"`
	Token0PriceUSD            decimal.Decimal `json:"token0PriceUSD" db:"token_0_price_usd"`
	Token1PriceUSD            decimal.Decimal `json:"token1PriceUSD" db:"token_1_price_usd"`
	Reserve0                  decimal.Decimal `json:"reserve0" db:"reserve_0"`
	Reserve1                  decimal.Decimal `json:"reserve1" db:"reserve_1"`
	ReserveUSD                decimal.Decimal `json:"reserveUSD" db:"reserve_usd"`
	LiquidityTokenTotalSupply decimal.Decimal `json:"liquidityTokenTotalSupply" db:"liquidity_token_total_supply"`
	LiquidityTokenBalance     decimal.Decimal `json:"liquidityTokenBalance" db:"liquidity_token_balance"`
}

func NewLiquidityPositionSnapshot(id string) *LiquidityPositionSnapshot {
	return &LiquidityPositionSnapshot{Base: graphnode.NewBase(id)}
}

// AthleteXDayData
type AthleteXDayData struct {
	graphnode.Base
	Date                 int64           `json:"date" db:"date"`
	DailyVolumeMATIC     decimal.Decimal `json:"dailyVolumeMATIC" db:"daily_volume_matic"`
	DailyVolumeUSD       decimal.Decimal `json:"dailyVolumeUSD" db:"daily_volume_usd"`
	DailyVolumeUntracked decimal.Decimal `json:"dailyVolumeUntracked" db:"daily_volume_untracked"`
	TotalLiquidityMATIC  decimal.Decimal `json:"totalLiquidityMATIC" db:"total_liquidity_matic"`
	TotalLiquidityUSD    decimal.Decimal `json:"totalLiquidityUSD" db:"total_liquidity_usd"`
	TotalTransactions    int64           `json:"totalTransactions" db:"total_transactions"`
}

func NewAthleteXDayData(id string) *AthleteXDayData {
	return &AthleteXDayData{Base: graphnode.NewBase(id)}
}

// PairDayData
type PairDayData struct {
	graphnode.Base
	Date              int64           `json:"date" db:"date"`
	PairAddress       string          `json:"pairAddress" db:"pair_address"`
	Token0            string          `json:"token0" db:"token_0"`
	Token1            string          `json:"token1" db:"token_1"`
	Reserve0          decimal.Decimal `json:"reserve0" db:"reserve_0"`
	Reserve1          decimal.Decimal `json:"reserve1" db:"reserve_1"`
	TotalSupply       decimal.Decimal `json:"totalSupply" db:"total_supply"`
	ReserveUSD        decimal.Decimal `json:"reserveUSD" db:"reserve_usd"`
	DailyVolumeToken0 decimal.Decimal `json:"dailyVolumeToken0" db:"daily_volume_token_0"`
	DailyVolumeToken1 decimal.Decimal `json:"dailyVolumeToken1" db:"daily_volume_token_1"`
	DailyVolumeUSD    decimal.Decimal `json:"dailyVolumeUSD" db:"daily_volume_usd"`
	DailyTxns         int64           `json:"dailyTxns" db:"daily_txns"`
}

func NewPairDayData(id string) *PairDayData {
	return &PairDayData{Base: graphnode.NewBase(id)}
}

// PairHourData
type PairHourData struct {
	graphnode.Base
	HourStartUnix      int64           `json:"hourStartUnix" db:"hour_start_unix"`
	Pair               string          `json:"pair" db:"pair"`
	Reserve0           decimal.Decimal `json:"reserve0" db:"reserve_0"`
	Reserve1           decimal.Decimal `json:"reserve1" db:"reserve_1"`
	ReserveUSD         decimal.Decimal `json:"reserveUSD" db:"reserve_usd"`
	HourlyVolumeToken0 decimal.Decimal `json:"hourlyVolumeToken0" db:"hourly_volume_token_0"`
	HourlyVolumeToken1 decimal.Decimal `json:"hourlyVolumeToken1" db:"hourly_volume_token_1"`
	HourlyVolumeUSD    decimal.Decimal `json:"hourlyVolumeUSD" db:"hourly_volume_usd"`
	HourlyTxns         int64           `json:"hourlyTxns" db:"hourly_txns"`
}

func NewPairHourData(id string) *PairHourData {
	return &PairHourData{Base: graphnode.NewBase(id)}
}

// TokenDayData
type TokenDayData struct {
	graphnode.Base
	Date                int64           `json:"date" db:"date"`
	Token               string          `json:"token" db:"token"`
	DailyVolumeToken    decimal.Decimal `json:"dailyVolumeToken" db:"daily_volume_token"`
	DailyVolumeMATIC    decimal.Decimal `json:"dailyVolumeMATIC" db:"daily_volume_matic"`
	DailyVolumeUSD      decimal.Decimal `json:"dailyVolumeUSD" db:"daily_volume_usd"`
	TotalLiquidityToken decimal.Decimal `json:"totalLiquidityToken" db:"total_liquidity_token"`
	TotalLiquidityMATIC decimal.Decimal `json:"totalLiquidityMATIC" db:"total_liquidity_matic"`
	TotalLiquidityUSD   decimal.Decimal `json:"totalLiquidityUSD" db:"total_liquidity_usd"`
	PriceUSD            decimal.Decimal `json:"priceUSD" db:"price_usd"`
	DailyTxns           int64           `json:"dailyTxns" db:"daily_txns"`
}

func NewTokenDayData(id string) *TokenDayData {
	return &TokenDayData{Base: graphnode.NewBase(id)}
}
