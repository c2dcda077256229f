package mock

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/dataRetriever/txpool"
)

// TransactionsPoolStub -
type TransactionsPoolStub struct {
	CountCalled    func() int
	SnapshotCalled func() []*txpool.PooledTransactionInfo
}

// Count -
func (stub *TransactionsPoolStub) Count() int {
	if stub.CountCalled != nil {
		return stub.CountCalled()
	}

	return 0
}

// Snapshot -
func (stub *TransactionsPoolStub) Snapshot() []*txpool.PooledTransactionInfo {
	if stub.SnapshotCalled != nil {
		return stub.SnapshotCalled()
	}

	return make([]*txpool.PooledTransactionInfo, 0)
}

// IsInterfaceNil -
func (stub *TransactionsPoolStub) IsInterfaceNil() bool {
	return stub == nil
}
