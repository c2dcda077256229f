package transactionLog

import (
	"sync"

	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("process/transactionLog")

// eventsLog accumulates the events deposited by the call currently being executed. The pending
// events become visible (recent list and subscribers) only when the call is committed
type eventsLog struct {
	mut              sync.RWMutex
	pending          []htlc.Event
	recent           []*htlc.LogEntry
	capacity         int
	subscribers      map[uint64]chan *htlc.LogEntry
	nextSubscriberID uint64
}

// NewEventsLog creates a new events log keeping at most capacity committed entries
func NewEventsLog(capacity int) (*eventsLog, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &eventsLog{
		pending:     make([]htlc.Event, 0),
		recent:      make([]*htlc.LogEntry, 0, capacity),
		capacity:    capacity,
		subscribers: make(map[uint64]chan *htlc.LogEntry),
	}, nil
}

// Emit deposits an event for the call in execution
func (el *eventsLog) Emit(event htlc.Event) error {
	if event == nil {
		return ErrNilEvent
	}

	el.mut.Lock()
	el.pending = append(el.pending, event)
	el.mut.Unlock()

	return nil
}

// Pending returns a copy of the events deposited since the last commit or discard
func (el *eventsLog) Pending() []htlc.Event {
	el.mut.RLock()
	defer el.mut.RUnlock()

	pending := make([]htlc.Event, len(el.pending))
	copy(pending, el.pending)

	return pending
}

// Commit moves the pending events into the recent list, tagging them with the block height and
// the hash of the transaction that produced them, and notifies the subscribers
func (el *eventsLog) Commit(blockHeight uint64, txHash []byte) []*htlc.LogEntry {
	el.mut.Lock()
	defer el.mut.Unlock()

	entries := make([]*htlc.LogEntry, 0, len(el.pending))
	for _, event := range el.pending {
		entry := &htlc.LogEntry{
			BlockHeight: blockHeight,
			TxHash:      txHash,
			Identifier:  event.Identifier(),
			Event:       event,
		}
		entries = append(entries, entry)
		el.appendRecent(entry)
		el.publish(entry)
	}
	el.pending = make([]htlc.Event, 0)

	return entries
}

func (el *eventsLog) appendRecent(entry *htlc.LogEntry) {
	if len(el.recent) == el.capacity {
		copy(el.recent, el.recent[1:])
		el.recent = el.recent[:el.capacity-1]
	}
	el.recent = append(el.recent, entry)
}

// publish must be called under the write lock. Slow subscribers lose entries
func (el *eventsLog) publish(entry *htlc.LogEntry) {
	for id, ch := range el.subscribers {
		select {
		case ch <- entry:
		default:
			log.Debug("eventsLog: subscriber channel is full, entry dropped",
				"subscriber", id, "identifier", entry.Identifier)
		}
	}
}

// Discard drops the pending events
func (el *eventsLog) Discard() {
	el.mut.Lock()
	numDiscarded := len(el.pending)
	el.pending = make([]htlc.Event, 0)
	el.mut.Unlock()

	if numDiscarded > 0 {
		log.Trace("eventsLog: discarded pending events", "num", numDiscarded)
	}
}

// Recent returns at most maxEntries of the latest committed entries, oldest first
func (el *eventsLog) Recent(maxEntries int) []*htlc.LogEntry {
	el.mut.RLock()
	defer el.mut.RUnlock()

	if maxEntries <= 0 || maxEntries > len(el.recent) {
		maxEntries = len(el.recent)
	}

	result := make([]*htlc.LogEntry, maxEntries)
	copy(result, el.recent[len(el.recent)-maxEntries:])

	return result
}

// Subscribe registers a new listener for committed entries
func (el *eventsLog) Subscribe(bufferSize int) (uint64, <-chan *htlc.LogEntry) {
	if bufferSize < 1 {
		bufferSize = 1
	}

	el.mut.Lock()
	defer el.mut.Unlock()

	id := el.nextSubscriberID
	el.nextSubscriberID++
	ch := make(chan *htlc.LogEntry, bufferSize)
	el.subscribers[id] = ch

	return id, ch
}

// Unsubscribe removes the listener and closes its channel
func (el *eventsLog) Unsubscribe(id uint64) {
	el.mut.Lock()
	defer el.mut.Unlock()

	ch, found := el.subscribers[id]
	if !found {
		return
	}

	delete(el.subscribers, id)
	close(ch)
}

// IsInterfaceNil returns true if there is no value under the interface
func (el *eventsLog) IsInterfaceNil() bool {
	return el == nil
}
