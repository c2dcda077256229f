package facade

import "errors"

// ErrNilNode signals that a nil node instance has been provided
var ErrNilNode = errors.New("nil node")

// ErrNilOracleState signals that a nil oracle state has been provided
var ErrNilOracleState = errors.New("nil oracle state")

// ErrNilTransactionsPool signals that a nil transactions pool has been provided
var ErrNilTransactionsPool = errors.New("nil transactions pool")

// ErrNilEventsLog signals that a nil events log has been provided
var ErrNilEventsLog = errors.New("nil events log")

// ErrNilMetricsHandler signals that a nil metrics handler has been provided
var ErrNilMetricsHandler = errors.New("nil metrics handler")

// ErrInvalidSwapID signals that the provided swap identifier is malformed
var ErrInvalidSwapID = errors.New("invalid swap id")

// ErrSwapNotFound signals that the requested swap is not open
var ErrSwapNotFound = errors.New("swap not found")

// ErrCustodyAccountNotSet signals that no fetch job configured a custody account yet
var ErrCustodyAccountNotSet = errors.New("custody account not set")

// ErrEmptySourceURL signals that a kickoff request carries no source url
var ErrEmptySourceURL = errors.New("empty source url")

// ErrInvalidAccount signals that the provided account identifier is malformed
var ErrInvalidAccount = errors.New("invalid account")
