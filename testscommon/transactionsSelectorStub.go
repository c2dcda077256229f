package testscommon

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
)

// TransactionsSelectorStub -
type TransactionsSelectorStub struct {
	SelectTransactionsCalled func(maxNum int, currentHeight uint64) []*transaction.Transaction
}

// SelectTransactions -
func (stub *TransactionsSelectorStub) SelectTransactions(maxNum int, currentHeight uint64) []*transaction.Transaction {
	if stub.SelectTransactionsCalled != nil {
		return stub.SelectTransactionsCalled(maxNum, currentHeight)
	}

	return nil
}

// IsInterfaceNil -
func (stub *TransactionsSelectorStub) IsInterfaceNil() bool {
	return stub == nil
}
