package block

import "errors"

// ErrNilCallExecutor signals that a nil call executor has been provided
var ErrNilCallExecutor = errors.New("nil call executor")

// ErrNilTransactionsSelector signals that a nil transactions selector has been provided
var ErrNilTransactionsSelector = errors.New("nil transactions selector")

// ErrNilUnsignedTxValidator signals that a nil unsigned transactions validator has been provided
var ErrNilUnsignedTxValidator = errors.New("nil unsigned transactions validator")

// ErrInvalidMaxTransactionsPerBlock signals that an invalid maximum number of transactions per block has been provided
var ErrInvalidMaxTransactionsPerBlock = errors.New("invalid max transactions per block")
