package transaction

import (
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
)

type hashedTransaction struct {
	Origin   Origin `json:"origin"`
	CallName string `json:"callName"`
	Call     Call   `json:"call"`
}

// ComputeHash computes the hash of the transaction over its marshalled form
func ComputeHash(tx *Transaction, marshaller marshal.Marshalizer, hasher common.Hasher) ([]byte, error) {
	if tx == nil {
		return nil, ErrNilTransaction
	}
	if check.IfNil(marshaller) {
		return nil, common.ErrNilMarshalizer
	}
	if check.IfNil(hasher) {
		return nil, common.ErrNilHasher
	}

	buff, err := marshaller.Marshal(&hashedTransaction{
		Origin:   tx.Origin,
		CallName: tx.CallName(),
		Call:     tx.Call,
	})
	if err != nil {
		return nil, err
	}

	return hasher.Compute(string(buff)), nil
}
