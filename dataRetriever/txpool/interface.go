package txpool

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/dataValidators"
)

// UnsignedTxValidator decides the admission of unsigned transactions
type UnsignedTxValidator interface {
	ValidateUnsigned(tx *transaction.Transaction) (*dataValidators.ValidTransaction, error)
	IsInterfaceNil() bool
}
