package dataValidators

import (
	"fmt"
	"math"

	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
)

// IngestProvidesTag is the deduplication tag of every admitted ingestion transaction. Being
// constant, at most one ingestion transaction waits in the pool at any time
var IngestProvidesTag = []byte{0, 0, 0, 0}

// ValidTransaction holds the pool admission parameters of a transaction
type ValidTransaction struct {
	Priority  uint64
	Requires  [][]byte
	Provides  [][]byte
	Longevity uint64
	Propagate bool
}

type unsignedTxValidator struct {
}

// NewUnsignedTxValidator creates the admission validator for unsigned transactions
func NewUnsignedTxValidator() *unsignedTxValidator {
	return &unsignedTxValidator{}
}

// ValidateUnsigned decides whether the unsigned transaction may enter the pool. Only ingestion
// calls are admissible without a signature
func (utv *unsignedTxValidator) ValidateUnsigned(tx *transaction.Transaction) (*ValidTransaction, error) {
	if tx == nil {
		return nil, fmt.Errorf("%w: nil transaction", ErrNoUnsignedValidator)
	}
	if !tx.IsUnsigned() {
		return nil, fmt.Errorf("%w: origin %s", ErrNoUnsignedValidator, tx.Origin.Kind.String())
	}

	_, isIngest := tx.Call.(*transaction.IngestCall)
	if !isIngest {
		return nil, fmt.Errorf("%w: call %s", ErrNoUnsignedValidator, tx.CallName())
	}

	return &ValidTransaction{
		Priority:  math.MaxUint64,
		Requires:  make([][]byte, 0),
		Provides:  [][]byte{IngestProvidesTag},
		Longevity: math.MaxUint64,
		Propagate: true,
	}, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (utv *unsignedTxValidator) IsInterfaceNil() bool {
	return utv == nil
}
