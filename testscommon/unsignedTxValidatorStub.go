package testscommon

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/dataValidators"
)

// UnsignedTxValidatorStub -
type UnsignedTxValidatorStub struct {
	ValidateUnsignedCalled func(tx *transaction.Transaction) (*dataValidators.ValidTransaction, error)
}

// ValidateUnsigned -
func (stub *UnsignedTxValidatorStub) ValidateUnsigned(tx *transaction.Transaction) (*dataValidators.ValidTransaction, error) {
	if stub.ValidateUnsignedCalled != nil {
		return stub.ValidateUnsignedCalled(tx)
	}

	return &dataValidators.ValidTransaction{}, nil
}

// IsInterfaceNil -
func (stub *UnsignedTxValidatorStub) IsInterfaceNil() bool {
	return stub == nil
}
