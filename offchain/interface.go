package offchain

import (
	"context"

	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/htlcEvents"
)

// Fetcher retrieves the raw indexer responses
type Fetcher interface {
	Fetch(ctx context.Context, url string, header *RequestHeader) ([]byte, error)
	IsInterfaceNil() bool
}

// EnvelopeParser extracts the raw log entries from an indexer response
type EnvelopeParser interface {
	Parse(body []byte) []*htlcEvents.RawLog
	IsInterfaceNil() bool
}

// EventDecoder turns raw log entries into HTLC records
type EventDecoder interface {
	DecodeBatch(raws []*htlcEvents.RawLog, meta htlcEvents.DecodeMeta) []*htlc.EventHTLC
	IsInterfaceNil() bool
}

// OracleStateReader exposes the committed oracle configuration
type OracleStateReader interface {
	Sources() ([]*htlc.EventLogSource, error)
	CustodyAccount() ([]byte, bool)
	IsInterfaceNil() bool
}

// TxSubmitter accepts unsigned transactions for block inclusion
type TxSubmitter interface {
	AddUnsigned(tx *transaction.Transaction, currentHeight uint64) ([]byte, error)
	IsInterfaceNil() bool
}
