package transaction

import (
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
)

// OriginKind tells who dispatched a call
type OriginKind uint8

const (
	// OriginNone is used by unsigned transactions
	OriginNone OriginKind = iota
	// OriginSigned is used by transactions carrying a signer account
	OriginSigned
	// OriginRoot is used by privileged calls issued by the node operator
	OriginRoot
)

// String returns the human readable origin kind
func (k OriginKind) String() string {
	switch k {
	case OriginNone:
		return "none"
	case OriginSigned:
		return "signed"
	case OriginRoot:
		return "root"
	default:
		return "unknown"
	}
}

// Origin is the dispatch origin of a call
type Origin struct {
	Kind   OriginKind `json:"kind"`
	Signer []byte     `json:"signer,omitempty"`
}

// NoneOrigin returns the origin of unsigned transactions
func NoneOrigin() Origin {
	return Origin{Kind: OriginNone}
}

// RootOrigin returns the privileged origin
func RootOrigin() Origin {
	return Origin{Kind: OriginRoot}
}

// SignedOrigin returns the origin of a transaction signed by the provided account
func SignedOrigin(signer []byte) Origin {
	return Origin{Kind: OriginSigned, Signer: signer}
}

// Call is one of the dispatchable oracle commands
type Call interface {
	Name() string
}

// KickoffFetchCall replaces the configured sources with one entry and records the custody account
type KickoffFetchCall struct {
	CustodyAccount []byte `json:"custodyAccount"`
	SourceName     []byte `json:"sourceName"`
	SourceURL      []byte `json:"sourceURL"`
}

// Name returns the call name
func (c *KickoffFetchCall) Name() string {
	return "kickoff_fetch"
}

// KillFetchCall clears the configured sources
type KillFetchCall struct{}

// Name returns the call name
func (c *KillFetchCall) Name() string {
	return "kill_fetch"
}

// AddAuthorityCall adds an account to the authorities set
type AddAuthorityCall struct {
	Account []byte `json:"account"`
}

// Name returns the call name
func (c *AddAuthorityCall) Name() string {
	return "add_authority"
}

// IngestCall carries a batch of decoded external HTLC events
type IngestCall struct {
	Records []*htlc.EventHTLC `json:"records"`
}

// Name returns the call name
func (c *IngestCall) Name() string {
	return "ingest"
}

// Transaction is a call together with its dispatch origin
type Transaction struct {
	Origin Origin `json:"origin"`
	Call   Call   `json:"call"`
}

// NewUnsignedTransaction creates a transaction without signer
func NewUnsignedTransaction(call Call) *Transaction {
	return &Transaction{
		Origin: NoneOrigin(),
		Call:   call,
	}
}

// NewRootTransaction creates a privileged transaction
func NewRootTransaction(call Call) *Transaction {
	return &Transaction{
		Origin: RootOrigin(),
		Call:   call,
	}
}

// IsUnsigned returns true if the transaction has no signer
func (tx *Transaction) IsUnsigned() bool {
	return tx != nil && tx.Origin.Kind == OriginNone
}

// CallName returns the name of the carried call or an empty string
func (tx *Transaction) CallName() string {
	if tx == nil || tx.Call == nil {
		return ""
	}

	return tx.Call.Name()
}
