package offchain

import "errors"

// ErrRequestFailed signals that the indexer could not be reached in time or did not answer with 200 OK
var ErrRequestFailed = errors.New("request failed")

// ErrEmptyResponseBody signals that the indexer answered with an empty body
var ErrEmptyResponseBody = errors.New("empty response body")

// ErrInvalidChunkSize signals that an invalid response chunk size has been provided
var ErrInvalidChunkSize = errors.New("invalid response chunk size")

// ErrNilFetcher signals that a nil fetcher has been provided
var ErrNilFetcher = errors.New("nil fetcher")

// ErrNilEnvelopeParser signals that a nil envelope parser has been provided
var ErrNilEnvelopeParser = errors.New("nil envelope parser")

// ErrNilEventDecoder signals that a nil event decoder has been provided
var ErrNilEventDecoder = errors.New("nil event decoder")

// ErrNilOracleStateReader signals that a nil oracle state reader has been provided
var ErrNilOracleStateReader = errors.New("nil oracle state reader")

// ErrNilTxSubmitter signals that a nil transaction submitter has been provided
var ErrNilTxSubmitter = errors.New("nil transaction submitter")

// ErrInvalidFetchPeriod signals that a zero fetch period has been provided
var ErrInvalidFetchPeriod = errors.New("invalid fetch period")
