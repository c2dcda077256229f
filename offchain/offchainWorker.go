package offchain

import (
	"context"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/htlcEvents"
)

// ArgsOffchainWorker is the DTO used to create a new off-chain worker
type ArgsOffchainWorker struct {
	Fetcher             Fetcher
	EnvelopeParser      EnvelopeParser
	EventDecoder        EventDecoder
	State               OracleStateReader
	TxSubmitter         TxSubmitter
	StatusHandler       common.AppStatusHandler
	FetchPeriodInBlocks uint64
	RequestHeader       *RequestHeader
}

// RoundOutcome describes what a fetch round did
type RoundOutcome struct {
	Triggered    bool
	NumSources   int
	NumFetched   int
	NumRecords   int
	Submitted    bool
	TxHash       []byte
	ClearSources bool
}

type offchainWorker struct {
	fetcher             Fetcher
	envelopeParser      EnvelopeParser
	eventDecoder        EventDecoder
	state               OracleStateReader
	txSubmitter         TxSubmitter
	statusHandler       common.AppStatusHandler
	fetchPeriodInBlocks uint64
	requestHeader       *RequestHeader
}

// NewOffchainWorker creates the worker that, every fetch period, pulls the external HTLC events from
// the configured sources and submits them as one unsigned ingestion transaction
func NewOffchainWorker(args ArgsOffchainWorker) (*offchainWorker, error) {
	err := checkArgsOffchainWorker(args)
	if err != nil {
		return nil, err
	}

	return &offchainWorker{
		fetcher:             args.Fetcher,
		envelopeParser:      args.EnvelopeParser,
		eventDecoder:        args.EventDecoder,
		state:               args.State,
		txSubmitter:         args.TxSubmitter,
		statusHandler:       args.StatusHandler,
		fetchPeriodInBlocks: args.FetchPeriodInBlocks,
		requestHeader:       args.RequestHeader,
	}, nil
}

func checkArgsOffchainWorker(args ArgsOffchainWorker) error {
	if check.IfNil(args.Fetcher) {
		return ErrNilFetcher
	}
	if check.IfNil(args.EnvelopeParser) {
		return ErrNilEnvelopeParser
	}
	if check.IfNil(args.EventDecoder) {
		return ErrNilEventDecoder
	}
	if check.IfNil(args.State) {
		return ErrNilOracleStateReader
	}
	if check.IfNil(args.TxSubmitter) {
		return ErrNilTxSubmitter
	}
	if check.IfNil(args.StatusHandler) {
		return common.ErrNilStatusHandler
	}
	if args.FetchPeriodInBlocks == 0 {
		return fmt.Errorf("%w: must be at least 1", ErrInvalidFetchPeriod)
	}

	return nil
}

// OnBlockFinalized runs a fetch round if the finalized height is a multiple of the fetch period
func (ow *offchainWorker) OnBlockFinalized(ctx context.Context, height uint64) RoundOutcome {
	outcome := RoundOutcome{}
	if height%ow.fetchPeriodInBlocks != 0 {
		return outcome
	}

	sources, err := ow.state.Sources()
	if err != nil {
		log.Warn("cannot read the configured sources", "height", height, "error", err)
		return outcome
	}
	custodyAccount, found := ow.state.CustodyAccount()
	if !found {
		log.Debug("custody account not configured, fetch round skipped", "height", height, "num sources", len(sources))
		outcome.ClearSources = len(sources) > 0
		return outcome
	}

	outcome.Triggered = true
	outcome.NumSources = len(sources)
	ow.statusHandler.Increment(common.MetricFetchRounds)

	meta := htlcEvents.DecodeMeta{
		LocalHeight:    height,
		CustodyAccount: custodyAccount,
	}
	batch := make([]*htlc.EventHTLC, 0)
	for _, source := range sources {
		body, errFetch := ow.fetcher.Fetch(ctx, string(source.URL), ow.requestHeader)
		if errFetch != nil {
			log.Warn("cannot fetch htlc events", "source", string(source.Name), "height", height, "error", errFetch)
			ow.statusHandler.Increment(common.MetricFetchFailures)
			continue
		}
		outcome.NumFetched++

		rawLogs := ow.envelopeParser.Parse(body)
		records := ow.eventDecoder.DecodeBatch(rawLogs, meta)
		log.Debug("fetched htlc events", "source", string(source.Name), "height", height,
			"num log entries", len(rawLogs), "num records", len(records))

		batch = append(batch, records...)
	}

	outcome.NumRecords = len(batch)
	outcome.ClearSources = len(sources) > 0 && outcome.NumFetched == 0
	ow.statusHandler.AddUint64(common.MetricDecodedEvents, uint64(len(batch)))
	if len(batch) == 0 {
		return outcome
	}

	tx := transaction.NewUnsignedTransaction(&transaction.IngestCall{Records: batch})
	txHash, err := ow.txSubmitter.AddUnsigned(tx, height)
	if err != nil {
		log.Warn("cannot submit the ingestion transaction", "height", height, "num records", len(batch), "error", err)
		return outcome
	}

	outcome.Submitted = true
	outcome.TxHash = txHash
	ow.statusHandler.Increment(common.MetricUnsignedSubmissions)
	log.Info("ingestion transaction submitted", "height", height, "num records", len(batch), "tx hash", txHash)

	return outcome
}

// IsInterfaceNil returns true if there is no value under the interface
func (ow *offchainWorker) IsInterfaceNil() bool {
	return ow == nil
}
