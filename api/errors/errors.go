package errors

import (
	"errors"
)

// ErrInvalidJSONRequest signals an error in json request formatting
var ErrInvalidJSONRequest = errors.New("invalid json request")

// ErrValidation signals an error in validation
var ErrValidation = errors.New("validation error")

// ErrInvalidQueryParameter signals and invalid query parameter was provided
var ErrInvalidQueryParameter = errors.New("invalid query parameter")

// ErrGetNodeStatus signals an error happening when trying to fetch the node status
var ErrGetNodeStatus = errors.New("getting node status failed")

// ErrGetSwap signals an error happening when trying to fetch a swap
var ErrGetSwap = errors.New("getting swap failed")

// ErrGetOracleConfig signals an error happening when trying to fetch the oracle configuration
var ErrGetOracleConfig = errors.New("getting oracle configuration failed")

// ErrSubmitRootCall signals an error happening when trying to queue an administrative call
var ErrSubmitRootCall = errors.New("submitting root call failed")

// ErrUnauthorized signals that a privileged endpoint was called without a valid admin key
var ErrUnauthorized = errors.New("unauthorized")

// ErrTooManyRequests signals that too many requests were simultaneously received
var ErrTooManyRequests = errors.New("too many requests")

// ErrNilHttpServer signals that a nil http server has been provided
var ErrNilHttpServer = errors.New("nil http server")

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrNilMiddleware signals that a nil middleware has been provided
var ErrNilMiddleware = errors.New("nil middleware")
