package block

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/dataValidators"
)

// CallExecutor executes one transaction atomically
type CallExecutor interface {
	Execute(tx *transaction.Transaction, blockHeight uint64) ([]*htlc.LogEntry, error)
	IsInterfaceNil() bool
}

// TransactionsSelector hands over the pooled transactions for block inclusion
type TransactionsSelector interface {
	SelectTransactions(maxNum int, currentHeight uint64) []*transaction.Transaction
	IsInterfaceNil() bool
}

// UnsignedTxValidator re-checks unsigned transactions at block inclusion
type UnsignedTxValidator interface {
	ValidateUnsigned(tx *transaction.Transaction) (*dataValidators.ValidTransaction, error)
	IsInterfaceNil() bool
}
