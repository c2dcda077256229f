package oracle

import "errors"

// ErrNilOracleState signals that a nil oracle state has been provided
var ErrNilOracleState = errors.New("nil oracle state")

// ErrNilEventsHandler signals that a nil events handler has been provided
var ErrNilEventsHandler = errors.New("nil events handler")

// ErrNilIngestionProcessor signals that a nil ingestion processor has been provided
var ErrNilIngestionProcessor = errors.New("nil ingestion processor")

// ErrNilAdminProcessor signals that a nil admin processor has been provided
var ErrNilAdminProcessor = errors.New("nil admin processor")

// ErrInvalidHTLCEventType signals that a record carries an event type outside Open, Claimed and Refunded
var ErrInvalidHTLCEventType = errors.New("invalid htlc event type")

// ErrRequiresRootOrigin signals that a privileged call was dispatched without the root origin
var ErrRequiresRootOrigin = errors.New("call requires root origin")

// ErrRequiresNoneOrigin signals that an ingestion call was dispatched by a signed or root origin
var ErrRequiresNoneOrigin = errors.New("call requires none origin")

// ErrNilCall signals that a transaction without a call has been provided
var ErrNilCall = errors.New("nil call")

// ErrUnknownCall signals that the dispatcher does not know how to handle the provided call
var ErrUnknownCall = errors.New("unknown call")

// ErrEmptySourceURL signals that a kickoff call provided an empty source url
var ErrEmptySourceURL = errors.New("empty source url")
