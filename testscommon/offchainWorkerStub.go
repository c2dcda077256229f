package testscommon

import (
	"context"

	"github.com/multiversx/mx-chain-htlc-oracle-go/offchain"
)

// OffchainWorkerStub -
type OffchainWorkerStub struct {
	OnBlockFinalizedCalled func(ctx context.Context, height uint64) offchain.RoundOutcome
}

// OnBlockFinalized -
func (stub *OffchainWorkerStub) OnBlockFinalized(ctx context.Context, height uint64) offchain.RoundOutcome {
	if stub.OnBlockFinalizedCalled != nil {
		return stub.OnBlockFinalizedCalled(ctx, height)
	}

	return offchain.RoundOutcome{}
}

// IsInterfaceNil -
func (stub *OffchainWorkerStub) IsInterfaceNil() bool {
	return stub == nil
}
