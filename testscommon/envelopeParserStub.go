package testscommon

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/htlcEvents"
)

// EnvelopeParserStub -
type EnvelopeParserStub struct {
	ParseCalled func(body []byte) []*htlcEvents.RawLog
}

// Parse -
func (stub *EnvelopeParserStub) Parse(body []byte) []*htlcEvents.RawLog {
	if stub.ParseCalled != nil {
		return stub.ParseCalled(body)
	}

	return make([]*htlcEvents.RawLog, 0)
}

// IsInterfaceNil -
func (stub *EnvelopeParserStub) IsInterfaceNil() bool {
	return stub == nil
}
