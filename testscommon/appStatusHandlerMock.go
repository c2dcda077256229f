package testscommon

import "sync"

// AppStatusHandlerMock records the metric values in memory
type AppStatusHandlerMock struct {
	mut    sync.RWMutex
	values map[string]uint64
}

// NewAppStatusHandlerMock -
func NewAppStatusHandlerMock() *AppStatusHandlerMock {
	return &AppStatusHandlerMock{
		values: make(map[string]uint64),
	}
}

// Increment -
func (ashm *AppStatusHandlerMock) Increment(key string) {
	ashm.AddUint64(key, 1)
}

// AddUint64 -
func (ashm *AppStatusHandlerMock) AddUint64(key string, value uint64) {
	ashm.mut.Lock()
	ashm.values[key] += value
	ashm.mut.Unlock()
}

// SetUInt64Value -
func (ashm *AppStatusHandlerMock) SetUInt64Value(key string, value uint64) {
	ashm.mut.Lock()
	ashm.values[key] = value
	ashm.mut.Unlock()
}

// GetUint64 returns the recorded value of a metric
func (ashm *AppStatusHandlerMock) GetUint64(key string) uint64 {
	ashm.mut.RLock()
	defer ashm.mut.RUnlock()

	return ashm.values[key]
}

// Close -
func (ashm *AppStatusHandlerMock) Close() {
}

// IsInterfaceNil -
func (ashm *AppStatusHandlerMock) IsInterfaceNil() bool {
	return ashm == nil
}
