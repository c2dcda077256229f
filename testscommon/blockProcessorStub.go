package testscommon

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/block"
)

// BlockProcessorStub -
type BlockProcessorStub struct {
	ProcessBlockCalled func(height uint64, systemCalls []*transaction.Transaction) *block.BlockResult
}

// ProcessBlock -
func (stub *BlockProcessorStub) ProcessBlock(height uint64, systemCalls []*transaction.Transaction) *block.BlockResult {
	if stub.ProcessBlockCalled != nil {
		return stub.ProcessBlockCalled(height, systemCalls)
	}

	return &block.BlockResult{Height: height}
}

// IsInterfaceNil -
func (stub *BlockProcessorStub) IsInterfaceNil() bool {
	return stub == nil
}
