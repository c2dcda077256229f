package storage

// Persister provides storage of data services in a database like construct
type Persister interface {
	// Put add the value to the (key, val) persistence medium
	Put(key, val []byte) error
	// Get gets the value associated to the key
	Get(key []byte) ([]byte, error)
	// Has returns nil if the given key is present in the persistence medium
	Has(key []byte) error
	// Remove removes the data associated to the given key
	Remove(key []byte) error
	// Close closes the files/resources associated to the persistence medium
	Close() error
	// RangeKeys will iterate over all contained pairs, in no particular order, until the handler returns false
	RangeKeys(handler func(key []byte, val []byte) bool)
	// IsInterfaceNil returns true if there is no value under the interface
	IsInterfaceNil() bool
}

// DBType represents the type of the supported databases
type DBType string

const (
	// LvlDB is a leveldb persister with batched writes
	LvlDB DBType = "LvlDB"
	// LvlDBSerial is a leveldb persister with serialized batched writes
	LvlDBSerial DBType = "LvlDBSerial"
	// MemoryDB is an in memory persister
	MemoryDB DBType = "MemoryDB"
)
