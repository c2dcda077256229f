package testscommon

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
)

// CallExecutorStub -
type CallExecutorStub struct {
	ExecuteCalled func(tx *transaction.Transaction, blockHeight uint64) ([]*htlc.LogEntry, error)
}

// Execute -
func (stub *CallExecutorStub) Execute(tx *transaction.Transaction, blockHeight uint64) ([]*htlc.LogEntry, error) {
	if stub.ExecuteCalled != nil {
		return stub.ExecuteCalled(tx, blockHeight)
	}

	return nil, nil
}

// IsInterfaceNil -
func (stub *CallExecutorStub) IsInterfaceNil() bool {
	return stub == nil
}
