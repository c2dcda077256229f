package state

import "errors"

// ErrSwapNotFound signals that no record is stored for the provided swap id
var ErrSwapNotFound = errors.New("swap not found")

// ErrNilSwapRecord signals that a nil swap record has been provided
var ErrNilSwapRecord = errors.New("nil swap record")

// ErrEmptySwapID signals that an empty swap id has been provided
var ErrEmptySwapID = errors.New("empty swap id")
