package testscommon

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
)

// OracleStateReaderStub -
type OracleStateReaderStub struct {
	SourcesCalled        func() ([]*htlc.EventLogSource, error)
	CustodyAccountCalled func() ([]byte, bool)
}

// Sources -
func (stub *OracleStateReaderStub) Sources() ([]*htlc.EventLogSource, error) {
	if stub.SourcesCalled != nil {
		return stub.SourcesCalled()
	}

	return make([]*htlc.EventLogSource, 0), nil
}

// CustodyAccount -
func (stub *OracleStateReaderStub) CustodyAccount() ([]byte, bool) {
	if stub.CustodyAccountCalled != nil {
		return stub.CustodyAccountCalled()
	}

	return nil, false
}

// IsInterfaceNil -
func (stub *OracleStateReaderStub) IsInterfaceNil() bool {
	return stub == nil
}
