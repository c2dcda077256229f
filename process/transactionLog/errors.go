package transactionLog

import "errors"

// ErrInvalidCapacity signals that an invalid capacity has been provided
var ErrInvalidCapacity = errors.New("invalid capacity")

// ErrNilEvent signals that a nil event has been provided
var ErrNilEvent = errors.New("nil event")
