package block

import (
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("process/block")

// ArgsBlockProcessor is the DTO used to create a new block processor
type ArgsBlockProcessor struct {
	CallExecutor            CallExecutor
	TransactionsSelector    TransactionsSelector
	UnsignedTxValidator     UnsignedTxValidator
	StatusHandler           common.AppStatusHandler
	MaxTransactionsPerBlock int
}

// BlockResult sums up the execution of one block
type BlockResult struct {
	Height      uint64
	NumExecuted int
	NumFailed   int
	NumDropped  int
	Entries     []*htlc.LogEntry
}

type blockProcessor struct {
	callExecutor            CallExecutor
	transactionsSelector    TransactionsSelector
	unsignedTxValidator     UnsignedTxValidator
	statusHandler           common.AppStatusHandler
	maxTransactionsPerBlock int
}

// NewBlockProcessor creates the component executing the calls of a block in a deterministic order:
// first the system calls queued by the node, then the pooled transactions
func NewBlockProcessor(args ArgsBlockProcessor) (*blockProcessor, error) {
	if check.IfNil(args.CallExecutor) {
		return nil, ErrNilCallExecutor
	}
	if check.IfNil(args.TransactionsSelector) {
		return nil, ErrNilTransactionsSelector
	}
	if check.IfNil(args.UnsignedTxValidator) {
		return nil, ErrNilUnsignedTxValidator
	}
	if check.IfNil(args.StatusHandler) {
		return nil, common.ErrNilStatusHandler
	}
	if args.MaxTransactionsPerBlock < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxTransactionsPerBlock, args.MaxTransactionsPerBlock)
	}

	return &blockProcessor{
		callExecutor:            args.CallExecutor,
		transactionsSelector:    args.TransactionsSelector,
		unsignedTxValidator:     args.UnsignedTxValidator,
		statusHandler:           args.StatusHandler,
		maxTransactionsPerBlock: args.MaxTransactionsPerBlock,
	}, nil
}

// ProcessBlock executes the block at the provided height. A failing call is reverted on its own
// and does not affect the other calls of the block
func (bp *blockProcessor) ProcessBlock(height uint64, systemCalls []*transaction.Transaction) *BlockResult {
	result := &BlockResult{
		Height:  height,
		Entries: make([]*htlc.LogEntry, 0),
	}

	for _, tx := range systemCalls {
		bp.execute(tx, height, result)
	}

	pooledTxs := bp.transactionsSelector.SelectTransactions(bp.maxTransactionsPerBlock, height)
	for _, tx := range pooledTxs {
		if tx.IsUnsigned() {
			_, err := bp.unsignedTxValidator.ValidateUnsigned(tx)
			if err != nil {
				log.Debug("pooled transaction dropped at block inclusion", "call", tx.CallName(), "error", err)
				result.NumDropped++
				continue
			}
		}

		bp.execute(tx, height, result)
	}

	bp.statusHandler.SetUInt64Value(common.MetricCurrentBlockHeight, height)
	log.Debug("block processed", "height", height, "executed", result.NumExecuted,
		"failed", result.NumFailed, "dropped", result.NumDropped, "events", len(result.Entries))

	return result
}

func (bp *blockProcessor) execute(tx *transaction.Transaction, height uint64, result *BlockResult) {
	entries, err := bp.callExecutor.Execute(tx, height)
	if err != nil {
		log.Warn("call failed", "height", height, "call", tx.CallName(), "error", err)
		result.NumFailed++
		return
	}

	result.NumExecuted++
	result.Entries = append(result.Entries, entries...)
}

// IsInterfaceNil returns true if there is no value under the interface
func (bp *blockProcessor) IsInterfaceNil() bool {
	return bp == nil
}
