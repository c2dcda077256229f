package node

import (
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
)

// Option represents a functional configuration parameter that can operate
// over the Node struct.
type Option func(*Node) error

// WithBlockProcessor sets up the block processor option for the Node
func WithBlockProcessor(blockProcessor BlockProcessor) Option {
	return func(n *Node) error {
		if check.IfNil(blockProcessor) {
			return ErrNilBlockProcessor
		}
		n.blockProcessor = blockProcessor
		return nil
	}
}

// WithOffchainWorker sets up the off-chain worker option for the Node
func WithOffchainWorker(worker OffchainWorker) Option {
	return func(n *Node) error {
		if check.IfNil(worker) {
			return ErrNilOffchainWorker
		}
		n.offchainWorker = worker
		return nil
	}
}

// WithRoundDuration sets up the time between two produced blocks
func WithRoundDuration(roundDuration time.Duration) Option {
	return func(n *Node) error {
		if roundDuration <= 0 {
			return ErrInvalidRoundDuration
		}
		n.roundDuration = roundDuration
		return nil
	}
}

// WithInitialHeight sets up the height of the last block produced before this start
func WithInitialHeight(height uint64) Option {
	return func(n *Node) error {
		n.currentHeight = height
		return nil
	}
}

// WithGenesisCalls queues privileged calls to be executed in the first produced block
func WithGenesisCalls(calls ...transaction.Call) Option {
	return func(n *Node) error {
		for _, call := range calls {
			if call == nil {
				return ErrNilCall
			}
			n.systemCalls = append(n.systemCalls, transaction.NewRootTransaction(call))
		}
		return nil
	}
}
