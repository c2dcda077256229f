package testscommon

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
)

// NodeHandlerStub -
type NodeHandlerStub struct {
	SubmitRootCallCalled      func(call transaction.Call) error
	CurrentHeightCalled       func() uint64
	NumPendingRootCallsCalled func() int
	IsRunningCalled           func() bool
}

// SubmitRootCall -
func (stub *NodeHandlerStub) SubmitRootCall(call transaction.Call) error {
	if stub.SubmitRootCallCalled != nil {
		return stub.SubmitRootCallCalled(call)
	}

	return nil
}

// CurrentHeight -
func (stub *NodeHandlerStub) CurrentHeight() uint64 {
	if stub.CurrentHeightCalled != nil {
		return stub.CurrentHeightCalled()
	}

	return 0
}

// NumPendingRootCalls -
func (stub *NodeHandlerStub) NumPendingRootCalls() int {
	if stub.NumPendingRootCallsCalled != nil {
		return stub.NumPendingRootCallsCalled()
	}

	return 0
}

// ReadCommittedState -
func (stub *NodeHandlerStub) ReadCommittedState(handler func(currentHeight uint64)) {
	handler(stub.CurrentHeight())
}

// IsRunning -
func (stub *NodeHandlerStub) IsRunning() bool {
	if stub.IsRunningCalled != nil {
		return stub.IsRunningCalled()
	}

	return false
}

// IsInterfaceNil -
func (stub *NodeHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
