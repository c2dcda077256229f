package oracle

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("process/oracle")

// ArgsIngestionHandler is the DTO used to create a new ingestion handler
type ArgsIngestionHandler struct {
	State         OracleStateHandler
	Events        EventsHandler
	StatusHandler common.AppStatusHandler
}

type ingestionHandler struct {
	state         OracleStateHandler
	events        EventsHandler
	statusHandler common.AppStatusHandler
}

// NewIngestionHandler creates the component applying the per-swap state machine
func NewIngestionHandler(args ArgsIngestionHandler) (*ingestionHandler, error) {
	if check.IfNil(args.State) {
		return nil, ErrNilOracleState
	}
	if check.IfNil(args.Events) {
		return nil, ErrNilEventsHandler
	}
	if check.IfNil(args.StatusHandler) {
		return nil, common.ErrNilStatusHandler
	}

	return &ingestionHandler{
		state:         args.State,
		events:        args.Events,
		statusHandler: args.StatusHandler,
	}, nil
}

// Ingest applies the records in order. A record whose transition precondition does not hold is
// logged and skipped, while an unknown event type aborts the whole batch
func (ih *ingestionHandler) Ingest(records []*htlc.EventHTLC) error {
	for idx, record := range records {
		if record == nil {
			log.Debug("ingestionHandler.Ingest: skipped nil record", "index", idx)
			ih.statusHandler.Increment(common.MetricSkippedRecords)
			continue
		}

		var err error
		switch record.EventType {
		case htlc.Open:
			err = ih.applyOpen(record)
		case htlc.Claimed:
			err = ih.applyTerminal(record, ih.claimEvent(record))
		case htlc.Refunded:
			err = ih.applyTerminal(record, ih.refundEvent(record))
		default:
			return fmt.Errorf("%w: %d at index %d", ErrInvalidHTLCEventType, record.EventType, idx)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (ih *ingestionHandler) applyOpen(record *htlc.EventHTLC) error {
	if ih.state.HasSwapData(record.SwapID) || ih.state.HasSwapState(record.SwapID) {
		log.Debug("swap already exists, open event skipped", "swap id", record.SwapID)
		ih.statusHandler.Increment(common.MetricSkippedRecords)
		return nil
	}

	err := ih.state.PutSwapData(record)
	if err != nil {
		return err
	}
	err = ih.state.PutSwapState(record.SwapID, htlc.StateOpen)
	if err != nil {
		return err
	}

	log.Debug("swap opened", "swap id", record.SwapID, "amount", record.GetAmount().String(),
		"htlc block", record.HTLCBlockNumber, "expire height", record.ExpireHeight)

	return ih.events.Emit(&htlc.HTLCEvent{
		Receiver:      record.ReceiverAddr,
		Contract:      record.ExternalContractAddr,
		HTLCBlock:     record.HTLCBlockNumber,
		ExpireHeight:  record.ExpireHeight,
		SecretHash:    record.SecretHash,
		SwapID:        record.SwapID,
		Sender:        record.SenderAddr,
		Amount:        record.GetAmount(),
		HTLCTimestamp: record.HTLCTimestamp,
	})
}

// applyTerminal removes an existing swap from both stores, emitting the provided event
func (ih *ingestionHandler) applyTerminal(record *htlc.EventHTLC, event htlc.Event) error {
	if !ih.state.HasSwapData(record.SwapID) || !ih.state.HasSwapState(record.SwapID) {
		log.Debug("swap does not exist, terminal event skipped",
			"swap id", record.SwapID, "event type", record.EventType.String())
		ih.statusHandler.Increment(common.MetricSkippedRecords)
		return nil
	}

	ih.state.RemoveSwapData(record.SwapID)
	ih.state.RemoveSwapState(record.SwapID)

	log.Debug("swap closed", "swap id", record.SwapID, "event type", record.EventType.String())

	return ih.events.Emit(event)
}

func (ih *ingestionHandler) claimEvent(record *htlc.EventHTLC) htlc.Event {
	return &htlc.ClaimEvent{
		Receiver: record.ReceiverAddr,
		Contract: record.ExternalContractAddr,
		SwapID:   record.SwapID,
		Sender:   record.SenderAddr,
		Secret:   record.SecretHash,
	}
}

func (ih *ingestionHandler) refundEvent(record *htlc.EventHTLC) htlc.Event {
	return &htlc.RefundEvent{
		Receiver:   record.ReceiverAddr,
		Contract:   record.ExternalContractAddr,
		SwapID:     record.SwapID,
		Sender:     record.SenderAddr,
		SecretHash: record.SecretHash,
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (ih *ingestionHandler) IsInterfaceNil() bool {
	return ih == nil
}
