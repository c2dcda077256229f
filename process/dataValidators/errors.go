package dataValidators

import "errors"

// ErrNoUnsignedValidator signals that the transaction is not an admissible unsigned transaction
var ErrNoUnsignedValidator = errors.New("no unsigned validator")
