package mock

import (
	"net/http"

	"github.com/multiversx/mx-chain-htlc-oracle-go/config"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
)

// FacadeStub -
type FacadeStub struct {
	RestApiInterfaceCalled       func() string
	RestAPIServerDebugModeCalled func() bool
	ApiConfigCalled              func() config.ApiConfig
	GetNodeStatusCalled          func() (*api.NodeStatus, error)
	GetSwapCalled                func(swapIDHex string) (*api.SwapInfo, error)
	GetSourcesCalled             func() ([]*api.EventSource, error)
	GetCustodyAccountCalled      func() (string, error)
	GetAuthoritiesCalled         func() ([]string, error)
	IsAuthorityCalled            func(accountHex string) (bool, error)
	GetPoolTransactionsCalled    func() []*api.PooledTransaction
	GetRecentEventsCalled        func(maxEntries int) []*api.EventLogEntry
	SubscribeEventsCalled        func(bufferSize int) (uint64, <-chan *api.EventLogEntry)
	UnsubscribeEventsCalled      func(id uint64)
	KickoffFetchCalled           func(custodyHex string, sourceName string, sourceURL string) error
	KillFetchCalled              func() error
	AddAuthorityCalled           func(accountHex string) error
	MetricsHandlerCalled         func() http.Handler
}

// RestApiInterface -
func (stub *FacadeStub) RestApiInterface() string {
	if stub.RestApiInterfaceCalled != nil {
		return stub.RestApiInterfaceCalled()
	}

	return "localhost:8080"
}

// RestAPIServerDebugMode -
func (stub *FacadeStub) RestAPIServerDebugMode() bool {
	if stub.RestAPIServerDebugModeCalled != nil {
		return stub.RestAPIServerDebugModeCalled()
	}

	return false
}

// ApiConfig -
func (stub *FacadeStub) ApiConfig() config.ApiConfig {
	if stub.ApiConfigCalled != nil {
		return stub.ApiConfigCalled()
	}

	return config.ApiConfig{
		SimultaneousRequests: 10,
	}
}

// GetNodeStatus -
func (stub *FacadeStub) GetNodeStatus() (*api.NodeStatus, error) {
	if stub.GetNodeStatusCalled != nil {
		return stub.GetNodeStatusCalled()
	}

	return &api.NodeStatus{}, nil
}

// GetSwap -
func (stub *FacadeStub) GetSwap(swapIDHex string) (*api.SwapInfo, error) {
	if stub.GetSwapCalled != nil {
		return stub.GetSwapCalled(swapIDHex)
	}

	return nil, nil
}

// GetSources -
func (stub *FacadeStub) GetSources() ([]*api.EventSource, error) {
	if stub.GetSourcesCalled != nil {
		return stub.GetSourcesCalled()
	}

	return make([]*api.EventSource, 0), nil
}

// GetCustodyAccount -
func (stub *FacadeStub) GetCustodyAccount() (string, error) {
	if stub.GetCustodyAccountCalled != nil {
		return stub.GetCustodyAccountCalled()
	}

	return "", nil
}

// GetAuthorities -
func (stub *FacadeStub) GetAuthorities() ([]string, error) {
	if stub.GetAuthoritiesCalled != nil {
		return stub.GetAuthoritiesCalled()
	}

	return make([]string, 0), nil
}

// IsAuthority -
func (stub *FacadeStub) IsAuthority(accountHex string) (bool, error) {
	if stub.IsAuthorityCalled != nil {
		return stub.IsAuthorityCalled(accountHex)
	}

	return false, nil
}

// GetPoolTransactions -
func (stub *FacadeStub) GetPoolTransactions() []*api.PooledTransaction {
	if stub.GetPoolTransactionsCalled != nil {
		return stub.GetPoolTransactionsCalled()
	}

	return make([]*api.PooledTransaction, 0)
}

// GetRecentEvents -
func (stub *FacadeStub) GetRecentEvents(maxEntries int) []*api.EventLogEntry {
	if stub.GetRecentEventsCalled != nil {
		return stub.GetRecentEventsCalled(maxEntries)
	}

	return make([]*api.EventLogEntry, 0)
}

// SubscribeEvents -
func (stub *FacadeStub) SubscribeEvents(bufferSize int) (uint64, <-chan *api.EventLogEntry) {
	if stub.SubscribeEventsCalled != nil {
		return stub.SubscribeEventsCalled(bufferSize)
	}

	return 0, make(chan *api.EventLogEntry)
}

// UnsubscribeEvents -
func (stub *FacadeStub) UnsubscribeEvents(id uint64) {
	if stub.UnsubscribeEventsCalled != nil {
		stub.UnsubscribeEventsCalled(id)
	}
}

// KickoffFetch -
func (stub *FacadeStub) KickoffFetch(custodyHex string, sourceName string, sourceURL string) error {
	if stub.KickoffFetchCalled != nil {
		return stub.KickoffFetchCalled(custodyHex, sourceName, sourceURL)
	}

	return nil
}

// KillFetch -
func (stub *FacadeStub) KillFetch() error {
	if stub.KillFetchCalled != nil {
		return stub.KillFetchCalled()
	}

	return nil
}

// AddAuthority -
func (stub *FacadeStub) AddAuthority(accountHex string) error {
	if stub.AddAuthorityCalled != nil {
		return stub.AddAuthorityCalled(accountHex)
	}

	return nil
}

// MetricsHandler -
func (stub *FacadeStub) MetricsHandler() http.Handler {
	if stub.MetricsHandlerCalled != nil {
		return stub.MetricsHandlerCalled()
	}

	return http.NotFoundHandler()
}

// IsInterfaceNil -
func (stub *FacadeStub) IsInterfaceNil() bool {
	return stub == nil
}
