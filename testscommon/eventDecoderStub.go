package testscommon

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/htlcEvents"
)

// EventDecoderStub -
type EventDecoderStub struct {
	DecodeBatchCalled func(raws []*htlcEvents.RawLog, meta htlcEvents.DecodeMeta) []*htlc.EventHTLC
}

// DecodeBatch -
func (stub *EventDecoderStub) DecodeBatch(raws []*htlcEvents.RawLog, meta htlcEvents.DecodeMeta) []*htlc.EventHTLC {
	if stub.DecodeBatchCalled != nil {
		return stub.DecodeBatchCalled(raws, meta)
	}

	return make([]*htlc.EventHTLC, 0)
}

// IsInterfaceNil -
func (stub *EventDecoderStub) IsInterfaceNil() bool {
	return stub == nil
}
