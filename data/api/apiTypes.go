package api

// NodeStatus holds the block production status exposed by the REST API
type NodeStatus struct {
	CurrentHeight      uint64 `json:"currentHeight"`
	IsRunning          bool   `json:"isRunning"`
	PendingRootCalls   int    `json:"pendingRootCalls"`
	PooledTransactions int    `json:"pooledTransactions"`
	NumSources         int    `json:"numSources"`
}

// SwapInfo is the API representation of an open swap
type SwapInfo struct {
	SwapID               string `json:"swapID"`
	State                string `json:"state"`
	IsClaimable          bool   `json:"isClaimable"`
	ExternalContractAddr string `json:"externalContractAddr"`
	HTLCBlockNumber      uint64 `json:"htlcBlockNumber"`
	EventBlockNumber     uint64 `json:"eventBlockNumber"`
	ExpireHeight         uint64 `json:"expireHeight"`
	SecretHash           string `json:"secretHash"`
	HTLCTimestamp        uint64 `json:"htlcTimestamp"`
	SenderAddr           string `json:"senderAddr"`
	SenderChain          string `json:"senderChain"`
	ReceiverAddr         string `json:"receiverAddr"`
	ReceiverChain        string `json:"receiverChain"`
	RecipientAddr        string `json:"recipientAddr"`
	Amount               string `json:"amount"`
}

// EventSource is the API representation of a configured indexer endpoint
type EventSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PooledTransaction is the API representation of a transaction waiting in the pool
type PooledTransaction struct {
	Hash          string `json:"hash"`
	Call          string `json:"call"`
	Origin        string `json:"origin"`
	Priority      uint64 `json:"priority"`
	AddedAtHeight uint64 `json:"addedAtHeight"`
}

// EventLogEntry is the API representation of an event committed in a block
type EventLogEntry struct {
	BlockHeight uint64            `json:"blockHeight"`
	TxHash      string            `json:"txHash"`
	Identifier  string            `json:"identifier"`
	Fields      map[string]string `json:"fields"`
}
