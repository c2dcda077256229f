package node

import (
	"context"

	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/offchain"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/block"
)

// BlockProcessor executes the calls of one block
type BlockProcessor interface {
	ProcessBlock(height uint64, systemCalls []*transaction.Transaction) *block.BlockResult
	IsInterfaceNil() bool
}

// OffchainWorker runs the off-chain fetch rounds after each finalized block
type OffchainWorker interface {
	OnBlockFinalized(ctx context.Context, height uint64) offchain.RoundOutcome
	IsInterfaceNil() bool
}
