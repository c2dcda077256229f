package node

import (
	"errors"
)

// ErrNilBlockProcessor signals that a nil block processor has been provided
var ErrNilBlockProcessor = errors.New("nil block processor")

// ErrNilOffchainWorker signals that a nil off-chain worker has been provided
var ErrNilOffchainWorker = errors.New("nil off-chain worker")

// ErrInvalidRoundDuration signals that an invalid round duration has been provided
var ErrInvalidRoundDuration = errors.New("invalid round duration")

// ErrNilOption signals that a nil option has been provided
var ErrNilOption = errors.New("nil option")

// ErrNilCall signals that a nil call has been provided
var ErrNilCall = errors.New("nil call")

// ErrNodeAlreadyRunning signals that the node was already started
var ErrNodeAlreadyRunning = errors.New("node already running")

// ErrNodeNotRunning signals that the node was not started
var ErrNodeNotRunning = errors.New("node is not running")
