package oracle

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
)

// ArgsCallDispatcher is the DTO used to create a new call dispatcher
type ArgsCallDispatcher struct {
	State              OracleStateHandler
	Events             EventsHandler
	IngestionProcessor IngestionProcessor
	AdminProcessor     AdminProcessor
	Marshaller         marshal.Marshalizer
	Hasher             common.Hasher
	StatusHandler      common.AppStatusHandler
}

type callDispatcher struct {
	state              OracleStateHandler
	events             EventsHandler
	ingestionProcessor IngestionProcessor
	adminProcessor     AdminProcessor
	marshaller         marshal.Marshalizer
	hasher             common.Hasher
	statusHandler      common.AppStatusHandler
}

// NewCallDispatcher creates the component executing transactions atomically: either all the state
// modifications and events of a call are committed, or none of them
func NewCallDispatcher(args ArgsCallDispatcher) (*callDispatcher, error) {
	err := checkArgsCallDispatcher(args)
	if err != nil {
		return nil, err
	}

	return &callDispatcher{
		state:              args.State,
		events:             args.Events,
		ingestionProcessor: args.IngestionProcessor,
		adminProcessor:     args.AdminProcessor,
		marshaller:         args.Marshaller,
		hasher:             args.Hasher,
		statusHandler:      args.StatusHandler,
	}, nil
}

func checkArgsCallDispatcher(args ArgsCallDispatcher) error {
	if check.IfNil(args.State) {
		return ErrNilOracleState
	}
	if check.IfNil(args.Events) {
		return ErrNilEventsHandler
	}
	if check.IfNil(args.IngestionProcessor) {
		return ErrNilIngestionProcessor
	}
	if check.IfNil(args.AdminProcessor) {
		return ErrNilAdminProcessor
	}
	if check.IfNil(args.Marshaller) {
		return common.ErrNilMarshalizer
	}
	if check.IfNil(args.Hasher) {
		return common.ErrNilHasher
	}
	if check.IfNil(args.StatusHandler) {
		return common.ErrNilStatusHandler
	}

	return nil
}

// Execute runs the transaction call in the context of the provided block height, returning the
// committed events
func (cd *callDispatcher) Execute(tx *transaction.Transaction, blockHeight uint64) ([]*htlc.LogEntry, error) {
	if tx == nil {
		return nil, transaction.ErrNilTransaction
	}
	if tx.Call == nil {
		return nil, ErrNilCall
	}

	txHash, err := transaction.ComputeHash(tx, cd.marshaller, cd.hasher)
	if err != nil {
		return nil, err
	}

	err = cd.dispatch(tx)
	if err != nil {
		cd.revert()
		log.Debug("call reverted", "call", tx.CallName(), "origin", tx.Origin.Kind.String(),
			"tx hash", txHash, "error", err)
		return nil, err
	}

	err = cd.state.Commit()
	if err != nil {
		cd.revert()
		return nil, fmt.Errorf("%w while committing call %s", err, tx.CallName())
	}

	entries := cd.events.Commit(blockHeight, txHash)
	cd.updateMetrics(entries)
	log.Debug("call executed", "call", tx.CallName(), "block", blockHeight, "tx hash", txHash,
		"num events", len(entries))

	return entries, nil
}

func (cd *callDispatcher) dispatch(tx *transaction.Transaction) error {
	switch call := tx.Call.(type) {
	case *transaction.KickoffFetchCall:
		err := ensureOrigin(tx.Origin, transaction.OriginRoot, ErrRequiresRootOrigin)
		if err != nil {
			return err
		}
		return cd.adminProcessor.KickoffFetch(call.CustodyAccount, call.SourceName, call.SourceURL)
	case *transaction.KillFetchCall:
		err := ensureOrigin(tx.Origin, transaction.OriginRoot, ErrRequiresRootOrigin)
		if err != nil {
			return err
		}
		return cd.adminProcessor.KillFetch()
	case *transaction.AddAuthorityCall:
		err := ensureOrigin(tx.Origin, transaction.OriginRoot, ErrRequiresRootOrigin)
		if err != nil {
			return err
		}
		return cd.adminProcessor.AddAuthority(call.Account)
	case *transaction.IngestCall:
		err := ensureOrigin(tx.Origin, transaction.OriginNone, ErrRequiresNoneOrigin)
		if err != nil {
			return err
		}
		return cd.ingestionProcessor.Ingest(call.Records)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCall, tx.CallName())
	}
}

func ensureOrigin(origin transaction.Origin, expected transaction.OriginKind, errOnMismatch error) error {
	if origin.Kind != expected {
		return fmt.Errorf("%w, got %s", errOnMismatch, origin.Kind.String())
	}

	return nil
}

func (cd *callDispatcher) revert() {
	cd.state.Revert()
	cd.events.Discard()
	cd.statusHandler.Increment(common.MetricFailedCalls)
}

func (cd *callDispatcher) updateMetrics(entries []*htlc.LogEntry) {
	for _, entry := range entries {
		switch entry.Identifier {
		case htlc.HTLCIdentifier:
			cd.statusHandler.Increment(common.MetricSwapsOpened)
		case htlc.ClaimIdentifier:
			cd.statusHandler.Increment(common.MetricSwapsClaimed)
		case htlc.RefundIdentifier:
			cd.statusHandler.Increment(common.MetricSwapsRefunded)
		}
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (cd *callDispatcher) IsInterfaceNil() bool {
	return cd == nil
}
