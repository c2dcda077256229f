package state

import (
	"sync"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/storage"
)

type dirtyData struct {
	value   []byte
	removed bool
}

// trackableStorer wraps a persister, keeping all modifications in a dirty map until they are
// either committed or reverted
type trackableStorer struct {
	mut        sync.RWMutex
	identifier string
	persister  storage.Persister
	dirtyData  map[string]dirtyData
}

func newTrackableStorer(identifier string, persister storage.Persister) (*trackableStorer, error) {
	if check.IfNil(persister) {
		return nil, storage.ErrNilPersister
	}

	return &trackableStorer{
		identifier: identifier,
		persister:  persister,
		dirtyData:  make(map[string]dirtyData),
	}, nil
}

// get fetches the value of a key, searching the dirty map before the persister
func (ts *trackableStorer) get(key []byte) ([]byte, bool) {
	ts.mut.RLock()
	defer ts.mut.RUnlock()

	if entry, found := ts.dirtyData[string(key)]; found {
		log.Trace("retrieve value from dirty data", "storer", ts.identifier, "key", key, "removed", entry.removed)
		if entry.removed {
			return nil, false
		}
		return entry.value, true
	}

	if ts.persister.Has(key) != nil {
		return nil, false
	}

	val, err := ts.persister.Get(key)
	if err != nil {
		log.Debug("trackableStorer.get", "storer", ts.identifier, "key", key, "error", err)
		return nil, false
	}

	return val, true
}

func (ts *trackableStorer) has(key []byte) bool {
	_, found := ts.get(key)
	return found
}

func (ts *trackableStorer) put(key []byte, value []byte) {
	ts.mut.Lock()
	ts.dirtyData[string(key)] = dirtyData{value: value}
	ts.mut.Unlock()
}

func (ts *trackableStorer) remove(key []byte) {
	ts.mut.Lock()
	ts.dirtyData[string(key)] = dirtyData{removed: true}
	ts.mut.Unlock()
}

// commit writes all the dirty entries in the persister
func (ts *trackableStorer) commit() error {
	ts.mut.Lock()
	defer ts.mut.Unlock()

	for key, entry := range ts.dirtyData {
		var err error
		if entry.removed {
			err = ts.persister.Remove([]byte(key))
		} else {
			err = ts.persister.Put([]byte(key), entry.value)
		}
		if err != nil {
			return err
		}

		delete(ts.dirtyData, key)
	}

	return nil
}

func (ts *trackableStorer) revert() {
	ts.mut.Lock()
	numDirty := len(ts.dirtyData)
	ts.dirtyData = make(map[string]dirtyData)
	ts.mut.Unlock()

	if numDirty > 0 {
		log.Trace("reverted dirty data", "storer", ts.identifier, "num entries", numDirty)
	}
}

func (ts *trackableStorer) close() error {
	return ts.persister.Close()
}
