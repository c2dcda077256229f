package testscommon

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
)

// TxSubmitterStub -
type TxSubmitterStub struct {
	AddUnsignedCalled func(tx *transaction.Transaction, currentHeight uint64) ([]byte, error)
}

// AddUnsigned -
func (stub *TxSubmitterStub) AddUnsigned(tx *transaction.Transaction, currentHeight uint64) ([]byte, error) {
	if stub.AddUnsignedCalled != nil {
		return stub.AddUnsignedCalled(tx, currentHeight)
	}

	return []byte("hash"), nil
}

// IsInterfaceNil -
func (stub *TxSubmitterStub) IsInterfaceNil() bool {
	return stub == nil
}
