package statusHandler

import "errors"

// ErrMetricNotFound signals that the requested metric is not registered
var ErrMetricNotFound = errors.New("metric does not exist")
