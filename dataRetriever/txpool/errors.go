package txpool

import "errors"

// ErrNilTxValidator signals that a nil transaction validator has been provided
var ErrNilTxValidator = errors.New("nil transaction validator")

// ErrInvalidPoolCapacity signals that an invalid pool capacity has been provided
var ErrInvalidPoolCapacity = errors.New("invalid pool capacity")

// ErrTxAlreadyInPool signals that the same transaction is already waiting in the pool
var ErrTxAlreadyInPool = errors.New("transaction already in pool")

// ErrTxAlreadyProvided signals that another pooled transaction already provides one of the transaction tags
var ErrTxAlreadyProvided = errors.New("transaction tag already provided")

// ErrPoolFull signals that the pool reached its capacity
var ErrPoolFull = errors.New("transaction pool is full")
