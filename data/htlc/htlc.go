package htlc

import (
	"math/big"
)

// HTLCChain tags which side of the bridge an address belongs to
type HTLCChain uint8

const (
	// ETHMain is the external Ethereum main chain
	ETHMain HTLCChain = iota
	// Local is the chain this oracle feeds
	Local
)

// String returns the human readable name of the chain
func (c HTLCChain) String() string {
	switch c {
	case ETHMain:
		return "ETHMain"
	case Local:
		return "Local"
	default:
		return "unknown"
	}
}

// HTLCType discriminates the external event shapes
type HTLCType uint8

const (
	// Open is an HTLC creation on the external chain
	Open HTLCType = iota
	// Claimed is an HTLC completion that reveals the secret
	Claimed
	// Refunded is an HTLC that expired and returned the funds to its sender
	Refunded
)

// String returns the human readable name of the event type
func (t HTLCType) String() string {
	switch t {
	case Open:
		return "Open"
	case Claimed:
		return "Claimed"
	case Refunded:
		return "Refunded"
	default:
		return "unknown"
	}
}

// HTLCStates is the logical swap lifecycle. Only StateOpen is ever persisted, the terminal
// states are represented by the absence of the swap
type HTLCStates uint8

const (
	// StateInvalid marks a swap that is not known
	StateInvalid HTLCStates = iota
	// StateOpen marks a swap that was created and is waiting for its terminal event
	StateOpen
	// StateCompleted marks a claimed swap
	StateCompleted
	// StateExpired marks a refunded swap
	StateExpired
)

// String returns the human readable name of the state
func (s HTLCStates) String() string {
	switch s {
	case StateInvalid:
		return "Invalid"
	case StateOpen:
		return "Open"
	case StateCompleted:
		return "Completed"
	case StateExpired:
		return "Expired"
	default:
		return "unknown"
	}
}

// EventLogSource is one configured indexer endpoint
type EventLogSource struct {
	Name []byte `json:"name"`
	URL  []byte `json:"url"`
}

// EventHTLC is one decoded external chain HTLC event. For Claimed events the SecretHash
// field holds the revealed secret
type EventHTLC struct {
	ExternalContractAddr []byte    `json:"externalContractAddr"`
	HTLCBlockNumber      uint64    `json:"htlcBlockNumber"`
	EventBlockNumber     uint64    `json:"eventBlockNumber"`
	ExpireHeight         uint64    `json:"expireHeight"`
	SecretHash           []byte    `json:"secretHash"`
	SwapID               []byte    `json:"swapID"`
	EventTimestamp       uint64    `json:"eventTimestamp"`
	HTLCTimestamp        uint64    `json:"htlcTimestamp"`
	SenderAddr           []byte    `json:"senderAddr"`
	SenderChain          HTLCChain `json:"senderChain"`
	ReceiverAddr         []byte    `json:"receiverAddr"`
	ReceiverChain        HTLCChain `json:"receiverChain"`
	RecipientAddr        []byte    `json:"recipientAddr"`
	Amount               *big.Int  `json:"amount"`
	EventType            HTLCType  `json:"eventType"`
}

// GetAmount returns the amount or zero when not set
func (e *EventHTLC) GetAmount() *big.Int {
	if e == nil || e.Amount == nil {
		return big.NewInt(0)
	}

	return e.Amount
}
