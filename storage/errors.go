package storage

import "errors"

// ErrNotSupportedDBType is raised when an unsupported database type is provided
var ErrNotSupportedDBType = errors.New("not supported db type")

// ErrInvalidFilePath signals that an invalid file path has been provided
var ErrInvalidFilePath = errors.New("invalid file path")

// ErrNilPersister signals that a nil persister has been provided
var ErrNilPersister = errors.New("nil persister")
