package config

import "errors"

// ErrNilConfig signals that a nil config has been provided
var ErrNilConfig = errors.New("nil config")

// ErrInvalidConfig signals that a config value does not satisfy its constraints
var ErrInvalidConfig = errors.New("invalid config")
