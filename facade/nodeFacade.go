package facade

import (
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/config"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("facade")

// DefaultRestPortOff is the default value that should be passed if it is desired
// to start the node without a REST endpoint available
const DefaultRestPortOff = "off"

// ArgsNodeFacade represents the argument for the nodeFacade
type ArgsNodeFacade struct {
	Node      NodeHandler
	State     OracleStateHandler
	Pool      TransactionsPoolHandler
	EventsLog EventsLogHandler
	Metrics   MetricsHandler
	ApiConfig config.ApiConfig
}

// nodeFacade represents a facade for grouping the functionality of the oracle node
type nodeFacade struct {
	node      NodeHandler
	state     OracleStateHandler
	pool      TransactionsPoolHandler
	eventsLog EventsLogHandler
	metrics   MetricsHandler
	apiConfig config.ApiConfig
}

// NewNodeFacade creates a new facade instance
func NewNodeFacade(args ArgsNodeFacade) (*nodeFacade, error) {
	if check.IfNil(args.Node) {
		return nil, ErrNilNode
	}
	if check.IfNil(args.State) {
		return nil, ErrNilOracleState
	}
	if check.IfNil(args.Pool) {
		return nil, ErrNilTransactionsPool
	}
	if check.IfNil(args.EventsLog) {
		return nil, ErrNilEventsLog
	}
	if check.IfNil(args.Metrics) {
		return nil, ErrNilMetricsHandler
	}

	return &nodeFacade{
		node:      args.Node,
		state:     args.State,
		pool:      args.Pool,
		eventsLog: args.EventsLog,
		metrics:   args.Metrics,
		apiConfig: args.ApiConfig,
	}, nil
}

// RestApiInterface returns the interface on which the rest API should start on, based on the config file provided.
// The API will start on the DefaultRestInterface value unless a correct value is passed or
// the value is explicitly set to off, in which case it will not start at all
func (nf *nodeFacade) RestApiInterface() string {
	if nf.apiConfig.RestApiInterface == "" {
		return DefaultRestPortOff
	}

	return nf.apiConfig.RestApiInterface
}

// RestAPIServerDebugMode return true is debug mode for Rest API is enabled
func (nf *nodeFacade) RestAPIServerDebugMode() bool {
	return nf.apiConfig.DebugMode
}

// ApiConfig returns the REST API settings
func (nf *nodeFacade) ApiConfig() config.ApiConfig {
	return nf.apiConfig
}

// GetNodeStatus returns the block production status
func (nf *nodeFacade) GetNodeStatus() (*api.NodeStatus, error) {
	status := &api.NodeStatus{
		IsRunning:          nf.node.IsRunning(),
		PendingRootCalls:   nf.node.NumPendingRootCalls(),
		PooledTransactions: nf.pool.Count(),
	}

	var err error
	nf.node.ReadCommittedState(func(currentHeight uint64) {
		status.CurrentHeight = currentHeight

		var sources []*htlc.EventLogSource
		sources, err = nf.state.Sources()
		status.NumSources = len(sources)
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

// GetSwap returns the open swap identified by the provided hex encoded swap id
func (nf *nodeFacade) GetSwap(swapIDHex string) (*api.SwapInfo, error) {
	swapID, err := hexutil.Decode(swapIDHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSwapID, err.Error())
	}
	if len(swapID) != common.HashSize {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d", ErrInvalidSwapID, len(swapID), common.HashSize)
	}

	var info *api.SwapInfo
	nf.node.ReadCommittedState(func(currentHeight uint64) {
		swapState, found := nf.state.GetSwapState(swapID)
		if !found {
			err = ErrSwapNotFound
			return
		}

		var record *htlc.EventHTLC
		record, err = nf.state.GetSwapData(swapID)
		if err != nil {
			return
		}

		info = swapToAPI(record, swapState)
		info.IsClaimable = nf.state.IsClaimable(swapID, currentHeight)
	})
	if err != nil {
		return nil, err
	}

	return info, nil
}

// GetSources returns the configured event log sources
func (nf *nodeFacade) GetSources() ([]*api.EventSource, error) {
	var sources []*htlc.EventLogSource
	var err error
	nf.node.ReadCommittedState(func(_ uint64) {
		sources, err = nf.state.Sources()
	})
	if err != nil {
		return nil, err
	}

	result := make([]*api.EventSource, 0, len(sources))
	for _, source := range sources {
		result = append(result, &api.EventSource{
			Name: string(source.Name),
			URL:  string(source.URL),
		})
	}

	return result, nil
}

// GetCustodyAccount returns the hex encoded custody account
func (nf *nodeFacade) GetCustodyAccount() (string, error) {
	var custody []byte
	var found bool
	nf.node.ReadCommittedState(func(_ uint64) {
		custody, found = nf.state.CustodyAccount()
	})
	if !found {
		return "", ErrCustodyAccountNotSet
	}

	return common.EncodeHex(custody), nil
}

// GetAuthorities returns the hex encoded authority accounts
func (nf *nodeFacade) GetAuthorities() ([]string, error) {
	var authorities [][]byte
	var err error
	nf.node.ReadCommittedState(func(_ uint64) {
		authorities, err = nf.state.Authorities()
	})
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(authorities))
	for _, account := range authorities {
		result = append(result, common.EncodeHex(account))
	}

	return result, nil
}

// IsAuthority returns true if the provided hex encoded account is an authority
func (nf *nodeFacade) IsAuthority(accountHex string) (bool, error) {
	account, err := decodeAccount(accountHex)
	if err != nil {
		return false, err
	}

	isAuthority := false
	nf.node.ReadCommittedState(func(_ uint64) {
		isAuthority = nf.state.IsAuthority(account)
	})

	return isAuthority, nil
}

// GetPoolTransactions returns the transactions waiting in the pool
func (nf *nodeFacade) GetPoolTransactions() []*api.PooledTransaction {
	snapshot := nf.pool.Snapshot()
	result := make([]*api.PooledTransaction, 0, len(snapshot))
	for _, info := range snapshot {
		result = append(result, &api.PooledTransaction{
			Hash:          common.EncodeHex(info.Hash),
			Call:          info.Call,
			Origin:        info.Origin,
			Priority:      info.Priority,
			AddedAtHeight: info.AddedAtHeight,
		})
	}

	return result
}

// GetRecentEvents returns at most maxEntries committed events, oldest first
func (nf *nodeFacade) GetRecentEvents(maxEntries int) []*api.EventLogEntry {
	entries := nf.eventsLog.Recent(maxEntries)
	result := make([]*api.EventLogEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, logEntryToAPI(entry))
	}

	return result
}

// SubscribeEvents returns a channel on which the events committed from now on are delivered.
// Events are dropped when the subscriber does not keep up
func (nf *nodeFacade) SubscribeEvents(bufferSize int) (uint64, <-chan *api.EventLogEntry) {
	if bufferSize < 1 {
		bufferSize = 1
	}

	id, chEntries := nf.eventsLog.Subscribe(bufferSize)
	chOut := make(chan *api.EventLogEntry, bufferSize)

	go func() {
		defer close(chOut)

		for entry := range chEntries {
			select {
			case chOut <- logEntryToAPI(entry):
			default:
				log.Debug("dropped event for slow subscriber", "subscription", id, "identifier", entry.Identifier)
			}
		}
	}()

	return id, chOut
}

// UnsubscribeEvents removes the subscription, closing its channel
func (nf *nodeFacade) UnsubscribeEvents(id uint64) {
	nf.eventsLog.Unsubscribe(id)
}

// KickoffFetch queues a root call that configures the single fetch job
func (nf *nodeFacade) KickoffFetch(custodyHex string, sourceName string, sourceURL string) error {
	custody, err := decodeAccount(custodyHex)
	if err != nil {
		return err
	}
	if len(sourceURL) == 0 {
		return ErrEmptySourceURL
	}

	return nf.node.SubmitRootCall(&transaction.KickoffFetchCall{
		CustodyAccount: custody,
		SourceName:     []byte(sourceName),
		SourceURL:      []byte(sourceURL),
	})
}

// KillFetch queues a root call that removes all the configured fetch jobs
func (nf *nodeFacade) KillFetch() error {
	return nf.node.SubmitRootCall(&transaction.KillFetchCall{})
}

// AddAuthority queues a root call that registers the provided hex encoded account as authority
func (nf *nodeFacade) AddAuthority(accountHex string) error {
	account, err := decodeAccount(accountHex)
	if err != nil {
		return err
	}

	return nf.node.SubmitRootCall(&transaction.AddAuthorityCall{Account: account})
}

// MetricsHandler returns the http handler exposing the node metrics
func (nf *nodeFacade) MetricsHandler() http.Handler {
	return nf.metrics.Handler()
}

func decodeAccount(accountHex string) ([]byte, error) {
	account, err := common.DecodeAccount(accountHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAccount, err.Error())
	}

	return account, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (nf *nodeFacade) IsInterfaceNil() bool {
	return nf == nil
}
