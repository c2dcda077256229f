package oracle

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
)

// OracleStateHandler defines the swap stores and oracle configuration operations used during call execution
type OracleStateHandler interface {
	GetSwapData(swapID []byte) (*htlc.EventHTLC, error)
	HasSwapData(swapID []byte) bool
	PutSwapData(record *htlc.EventHTLC) error
	RemoveSwapData(swapID []byte)
	GetSwapState(swapID []byte) (htlc.HTLCStates, bool)
	HasSwapState(swapID []byte) bool
	PutSwapState(swapID []byte, state htlc.HTLCStates) error
	RemoveSwapState(swapID []byte)
	Sources() ([]*htlc.EventLogSource, error)
	SetSources(sources []*htlc.EventLogSource) error
	ClearSources() ([]*htlc.EventLogSource, error)
	CustodyAccount() ([]byte, bool)
	SetCustodyAccount(account []byte) error
	AddAuthority(account []byte) (bool, error)
	Commit() error
	Revert()
	IsInterfaceNil() bool
}

// EventsHandler collects the events deposited by the call in execution
type EventsHandler interface {
	Emit(event htlc.Event) error
	Commit(blockHeight uint64, txHash []byte) []*htlc.LogEntry
	Discard()
	IsInterfaceNil() bool
}

// IngestionProcessor applies batches of decoded HTLC records
type IngestionProcessor interface {
	Ingest(records []*htlc.EventHTLC) error
	IsInterfaceNil() bool
}

// AdminProcessor applies the privileged oracle configuration calls
type AdminProcessor interface {
	KickoffFetch(custodyAccount []byte, sourceName []byte, sourceURL []byte) error
	KillFetch() error
	AddAuthority(account []byte) error
	IsInterfaceNil() bool
}
