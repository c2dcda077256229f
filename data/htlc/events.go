package htlc

import "math/big"

const (
	// InitIdentifier names the event emitted when a fetch job is configured
	InitIdentifier = "Init"
	// KillIdentifier names the event emitted when a fetch job is removed
	KillIdentifier = "Kill"
	// HTLCIdentifier names the event emitted when a swap is opened
	HTLCIdentifier = "HTLC"
	// ClaimIdentifier names the event emitted when a swap is claimed
	ClaimIdentifier = "Claim"
	// RefundIdentifier names the event emitted when a swap is refunded
	RefundIdentifier = "Refund"
)

// Event is implemented by all the events deposited during block execution
type Event interface {
	Identifier() string
}

// InitEvent is emitted by the kickoff call
type InitEvent struct {
	Custody []byte `json:"custody"`
	Name    []byte `json:"name"`
	URL     []byte `json:"url"`
}

// Identifier returns the event name
func (e *InitEvent) Identifier() string {
	return InitIdentifier
}

// KillEvent is emitted for every fetch job removed from the sources list
type KillEvent struct {
	Name []byte `json:"name"`
	URL  []byte `json:"url"`
}

// Identifier returns the event name
func (e *KillEvent) Identifier() string {
	return KillIdentifier
}

// HTLCEvent is emitted when a swap is opened
type HTLCEvent struct {
	Receiver      []byte   `json:"receiver"`
	Contract      []byte   `json:"contract"`
	HTLCBlock     uint64   `json:"htlcBlock"`
	ExpireHeight  uint64   `json:"expireHeight"`
	SecretHash    []byte   `json:"secretHash"`
	SwapID        []byte   `json:"swapID"`
	Sender        []byte   `json:"sender"`
	Amount        *big.Int `json:"amount"`
	HTLCTimestamp uint64   `json:"htlcTimestamp"`
}

// Identifier returns the event name
func (e *HTLCEvent) Identifier() string {
	return HTLCIdentifier
}

// ClaimEvent is emitted when a swap is claimed
type ClaimEvent struct {
	Receiver []byte `json:"receiver"`
	Contract []byte `json:"contract"`
	SwapID   []byte `json:"swapID"`
	Sender   []byte `json:"sender"`
	Secret   []byte `json:"secret"`
}

// Identifier returns the event name
func (e *ClaimEvent) Identifier() string {
	return ClaimIdentifier
}

// RefundEvent is emitted when a swap is refunded
type RefundEvent struct {
	Receiver   []byte `json:"receiver"`
	Contract   []byte `json:"contract"`
	SwapID     []byte `json:"swapID"`
	Sender     []byte `json:"sender"`
	SecretHash []byte `json:"secretHash"`
}

// Identifier returns the event name
func (e *RefundEvent) Identifier() string {
	return RefundIdentifier
}

// LogEntry is an event committed as part of a block
type LogEntry struct {
	BlockHeight uint64 `json:"blockHeight"`
	TxHash      []byte `json:"txHash"`
	Identifier  string `json:"identifier"`
	Event       Event  `json:"event"`
}
