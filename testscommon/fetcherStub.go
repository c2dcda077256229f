package testscommon

import (
	"context"

	"github.com/multiversx/mx-chain-htlc-oracle-go/offchain"
)

// FetcherStub -
type FetcherStub struct {
	FetchCalled func(ctx context.Context, url string, header *offchain.RequestHeader) ([]byte, error)
}

// Fetch -
func (stub *FetcherStub) Fetch(ctx context.Context, url string, header *offchain.RequestHeader) ([]byte, error) {
	if stub.FetchCalled != nil {
		return stub.FetchCalled(ctx, url, header)
	}

	return nil, nil
}

// IsInterfaceNil -
func (stub *FetcherStub) IsInterfaceNil() bool {
	return stub == nil
}
