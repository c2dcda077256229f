package facade

import (
	"net/http"

	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/dataRetriever/txpool"
)

// NodeHandler contains the node functions used by the facade
type NodeHandler interface {
	// SubmitRootCall queues a privileged call for the next produced block
	SubmitRootCall(call transaction.Call) error

	// NumPendingRootCalls returns the number of privileged calls waiting for the next block
	NumPendingRootCalls() int

	// ReadCommittedState runs the handler while no block is being executed, passing it the last produced height
	ReadCommittedState(handler func(currentHeight uint64))

	// IsRunning returns true if the block production loop is active
	IsRunning() bool

	IsInterfaceNil() bool
}

// OracleStateHandler defines the read-only view on the oracle state
type OracleStateHandler interface {
	GetSwapData(swapID []byte) (*htlc.EventHTLC, error)
	GetSwapState(swapID []byte) (htlc.HTLCStates, bool)
	IsClaimable(swapID []byte, currentHeight uint64) bool
	Sources() ([]*htlc.EventLogSource, error)
	CustodyAccount() ([]byte, bool)
	Authorities() ([][]byte, error)
	IsAuthority(account []byte) bool
	IsInterfaceNil() bool
}

// TransactionsPoolHandler defines the read-only view on the unsigned transactions pool
type TransactionsPoolHandler interface {
	Count() int
	Snapshot() []*txpool.PooledTransactionInfo
	IsInterfaceNil() bool
}

// EventsLogHandler defines the read side of the committed events log
type EventsLogHandler interface {
	Recent(maxEntries int) []*htlc.LogEntry
	Subscribe(bufferSize int) (uint64, <-chan *htlc.LogEntry)
	Unsubscribe(id uint64)
	IsInterfaceNil() bool
}

// MetricsHandler exposes the node metrics over http
type MetricsHandler interface {
	Handler() http.Handler
	IsInterfaceNil() bool
}
