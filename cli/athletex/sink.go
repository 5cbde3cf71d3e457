package athletex

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SportsToken/AthleteX-Dex-Subgraph/exchange"
	"github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sinkCmd = &cobra.Command{
	Use:          "sink [events-file]",
	Short:        "Feed decoded pair events into the entity store, one JSON object per line",
	RunE:         runSink,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

func init() {
	sinkCmd.Flags().Int64P("start-block", "s", -1, "Drop events below this block number")
	sinkCmd.Flags().Uint64P("stop-block", "t", 0, "Drop events at or above this block number (0 = no limit)")

	sinkCmd.Flags().String("store", "memory", "Entity store backend (memory or mongo)")
	sinkCmd.Flags().String("mongo-dsn", "mongodb://localhost:27017", "DSN for the mongo store")
	sinkCmd.Flags().String("mongo-database", "athletex", "Database name for the mongo store")

	rootCmd.AddCommand(sinkCmd)
}

func runSink(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var input io.Reader = os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening events file: %w", err)
		}
		defer file.Close()
		input = file
	}

	var store storage.Store
	switch backend := mustGetString(cmd, "store"); backend {
	case "memory":
		store = storage.NewMemoryStore(exchange.Definition)
	case "mongo":
		var err error
		store, err = storage.NewMongoStore(ctx, exchange.Definition,
			mustGetString(cmd, "mongo-dsn"),
			mustGetString(cmd, "mongo-database"),
		)
		if err != nil {
			return fmt.Errorf("creating mongo store: %w", err)
		}
	default:
		return fmt.Errorf("unknown store backend %q", backend)
	}
	defer store.Close()

	sg := exchange.New(store, exchange.DefaultConfig())
	if err := sg.Init(ctx); err != nil {
		return fmt.Errorf("initializing subgraph: %w", err)
	}

	startBlock := mustGetInt64(cmd, "start-block")
	stopBlock := mustGetUint64(cmd, "stop-block")

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	var handled, skipped int
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		env := &eventEnvelope{}
		if err := json.Unmarshal(line, env); err != nil {
			return fmt.Errorf("decoding event envelope: %w", err)
		}

		blockNum, err := env.blockNumber()
		if err != nil {
			return err
		}
		if startBlock >= 0 && blockNum < uint64(startBlock) {
			skipped++
			continue
		}
		if stopBlock != 0 && blockNum >= stopBlock {
			skipped++
			continue
		}

		event, err := env.decode()
		if err != nil {
			return err
		}
		if err := sg.HandleEvent(ctx, event); err != nil {
			return fmt.Errorf("handling %s event at block %d: %w", env.Type, blockNum, err)
		}
		handled++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading events: %w", err)
	}

	zlog.Info("sink done",
		zap.Int("handled", handled),
		zap.Int("skipped", skipped),
	)
	return nil
}

type eventEnvelope struct {
	Type  string          `json:"type"`
	Event json.RawMessage `json:"event"`
}

func (e *eventEnvelope) blockNumber() (uint64, error) {
	var head struct {
		BlockNumber uint64 `json:"blockNumber"`
	}
	if err := json.Unmarshal(e.Event, &head); err != nil {
		return 0, fmt.Errorf("decoding %s event header: %w", e.Type, err)
	}
	return head.BlockNumber, nil
}

func (e *eventEnvelope) decode() (interface{}, error) {
	var event interface{}
	switch e.Type {
	case "pair_created":
		event = &exchange.PairCreatedEvent{}
	case "transfer":
		event = &exchange.PairTransferEvent{}
	case "sync":
		event = &exchange.PairSyncEvent{}
	case "mint":
		event = &exchange.PairMintEvent{}
	case "burn":
		event = &exchange.PairBurnEvent{}
	case "swap":
		event = &exchange.PairSwapEvent{}
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}

	if err := json.Unmarshal(e.Event, event); err != nil {
		return nil, fmt.Errorf("decoding %s event: %w", e.Type, err)
	}
	return event, nil
}
