package common

import "time"

// FetchTimeout is the deadline of one external indexer request, measured from the call start
const FetchTimeout = 10 * time.Second

// DefaultFetchPeriodInBlocks is the number of blocks between two consecutive off-chain fetch rounds
const DefaultFetchPeriodInBlocks = uint64(5)

// DefaultResponseChunkSize is the size of the buffer used when reading an HTTP response body
const DefaultResponseChunkSize = 1024

// AccountIDLength is the length in bytes of a local chain account identifier
const AccountIDLength = 32

// HashSize is the length in bytes of the swap identifiers and transaction hashes
const HashSize = 32

// MetricCurrentBlockHeight is the metric that stores the height of the last processed block
const MetricCurrentBlockHeight = "htlc_oracle_current_block_height"

// MetricFetchRounds is the metric counting the triggered off-chain fetch rounds
const MetricFetchRounds = "htlc_oracle_fetch_rounds"

// MetricFetchFailures is the metric counting failed requests towards the configured sources
const MetricFetchFailures = "htlc_oracle_fetch_failures"

// MetricDecodedEvents is the metric counting the external events decoded into HTLC records
const MetricDecodedEvents = "htlc_oracle_decoded_events"

// MetricUnsignedSubmissions is the metric counting the unsigned ingestion transactions accepted by the pool
const MetricUnsignedSubmissions = "htlc_oracle_unsigned_submissions"

// MetricPoolRejections is the metric counting the transactions rejected by the pool
const MetricPoolRejections = "htlc_oracle_pool_rejections"

// MetricSwapsOpened is the metric counting swaps created by ingestion
const MetricSwapsOpened = "htlc_oracle_swaps_opened"

// MetricSwapsClaimed is the metric counting swaps removed by a claim
const MetricSwapsClaimed = "htlc_oracle_swaps_claimed"

// MetricSwapsRefunded is the metric counting swaps removed by a refund
const MetricSwapsRefunded = "htlc_oracle_swaps_refunded"

// MetricSkippedRecords is the metric counting ingested records that did not satisfy their transition precondition
const MetricSkippedRecords = "htlc_oracle_skipped_records"

// MetricFailedCalls is the metric counting the calls reverted during block execution
const MetricFailedCalls = "htlc_oracle_failed_calls"

// UnVersionedAppString represents the default app version that indicate that the binary wasn't build by setting
// the appVersion flag
const UnVersionedAppString = "undefined"
