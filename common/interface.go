package common

// AppStatusHandler defines the behavior of a component that records the node's metrics
type AppStatusHandler interface {
	Increment(key string)
	AddUint64(key string, value uint64)
	SetUInt64Value(key string, value uint64)
	Close()
	IsInterfaceNil() bool
}

// Hasher computes fixed size hashes
type Hasher interface {
	Compute(s string) []byte
	Size() int
	IsInterfaceNil() bool
}
