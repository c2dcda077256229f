package txpool

import (
	"container/heap"
	"fmt"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/dataValidators"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("txpool")

// ArgsUnsignedTxPool is the DTO used to create a new unsigned transactions pool
type ArgsUnsignedTxPool struct {
	Validator     UnsignedTxValidator
	Marshaller    marshal.Marshalizer
	Hasher        common.Hasher
	StatusHandler common.AppStatusHandler
	Capacity      int
}

type pooledTransaction struct {
	tx            *transaction.Transaction
	hash          []byte
	valid         *dataValidators.ValidTransaction
	addedAtHeight uint64
	arrival       uint64
}

// PooledTransactionInfo describes a transaction waiting in the pool
type PooledTransactionInfo struct {
	Hash          []byte `json:"hash"`
	Call          string `json:"call"`
	Origin        string `json:"origin"`
	Priority      uint64 `json:"priority"`
	AddedAtHeight uint64 `json:"addedAtHeight"`
}

type unsignedTxPool struct {
	mut           sync.RWMutex
	validator     UnsignedTxValidator
	marshaller    marshal.Marshalizer
	hasher        common.Hasher
	statusHandler common.AppStatusHandler
	capacity      int
	txsByHash     map[string]*pooledTransaction
	providedTags  map[string]string
	nextArrival   uint64
}

// NewUnsignedTxPool creates the pool holding the admitted unsigned transactions until block inclusion
func NewUnsignedTxPool(args ArgsUnsignedTxPool) (*unsignedTxPool, error) {
	if check.IfNil(args.Validator) {
		return nil, ErrNilTxValidator
	}
	if check.IfNil(args.Marshaller) {
		return nil, common.ErrNilMarshalizer
	}
	if check.IfNil(args.Hasher) {
		return nil, common.ErrNilHasher
	}
	if check.IfNil(args.StatusHandler) {
		return nil, common.ErrNilStatusHandler
	}
	if args.Capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoolCapacity, args.Capacity)
	}

	return &unsignedTxPool{
		validator:     args.Validator,
		marshaller:    args.Marshaller,
		hasher:        args.Hasher,
		statusHandler: args.StatusHandler,
		capacity:      args.Capacity,
		txsByHash:     make(map[string]*pooledTransaction),
		providedTags:  make(map[string]string),
	}, nil
}

// AddUnsigned validates the unsigned transaction and adds it to the pool, returning its hash
func (pool *unsignedTxPool) AddUnsigned(tx *transaction.Transaction, currentHeight uint64) ([]byte, error) {
	valid, err := pool.validator.ValidateUnsigned(tx)
	if err != nil {
		pool.statusHandler.Increment(common.MetricPoolRejections)
		return nil, err
	}

	txHash, err := transaction.ComputeHash(tx, pool.marshaller, pool.hasher)
	if err != nil {
		return nil, err
	}

	pool.mut.Lock()
	defer pool.mut.Unlock()

	err = pool.checkAdmissionUnprotected(txHash, valid)
	if err != nil {
		pool.statusHandler.Increment(common.MetricPoolRejections)
		return nil, err
	}

	pooled := &pooledTransaction{
		tx:            tx,
		hash:          txHash,
		valid:         valid,
		addedAtHeight: currentHeight,
		arrival:       pool.nextArrival,
	}
	pool.nextArrival++
	pool.txsByHash[string(txHash)] = pooled
	for _, tag := range valid.Provides {
		pool.providedTags[string(tag)] = string(txHash)
	}

	log.Debug("unsigned transaction added to pool", "hash", txHash, "call", tx.CallName(), "height", currentHeight)

	return txHash, nil
}

func (pool *unsignedTxPool) checkAdmissionUnprotected(txHash []byte, valid *dataValidators.ValidTransaction) error {
	_, exists := pool.txsByHash[string(txHash)]
	if exists {
		return ErrTxAlreadyInPool
	}
	for _, tag := range valid.Provides {
		_, taken := pool.providedTags[string(tag)]
		if taken {
			return fmt.Errorf("%w: tag %x", ErrTxAlreadyProvided, tag)
		}
	}
	if len(pool.txsByHash) >= pool.capacity {
		return ErrPoolFull
	}

	return nil
}

// SelectTransactions removes and returns at most maxNum transactions, the highest priority first.
// Transactions that outlived their longevity are dropped
func (pool *unsignedTxPool) SelectTransactions(maxNum int, currentHeight uint64) []*transaction.Transaction {
	pool.mut.Lock()
	defer pool.mut.Unlock()

	txsHeap := make(transactionsHeap, 0, len(pool.txsByHash))
	for _, pooled := range pool.txsByHash {
		if isExpired(pooled, currentHeight) {
			log.Debug("unsigned transaction expired", "hash", pooled.hash, "added at", pooled.addedAtHeight)
			pool.removeUnprotected(pooled)
			continue
		}
		txsHeap = append(txsHeap, pooled)
	}
	heap.Init(&txsHeap)

	selected := make([]*transaction.Transaction, 0, maxNum)
	for txsHeap.Len() > 0 && len(selected) < maxNum {
		pooled := heap.Pop(&txsHeap).(*pooledTransaction)
		pool.removeUnprotected(pooled)
		selected = append(selected, pooled.tx)
	}

	return selected
}

func isExpired(pooled *pooledTransaction, currentHeight uint64) bool {
	if currentHeight < pooled.addedAtHeight {
		return false
	}

	return currentHeight-pooled.addedAtHeight > pooled.valid.Longevity
}

func (pool *unsignedTxPool) removeUnprotected(pooled *pooledTransaction) {
	delete(pool.txsByHash, string(pooled.hash))
	for _, tag := range pooled.valid.Provides {
		if pool.providedTags[string(tag)] == string(pooled.hash) {
			delete(pool.providedTags, string(tag))
		}
	}
}

// Count returns the number of waiting transactions
func (pool *unsignedTxPool) Count() int {
	pool.mut.RLock()
	defer pool.mut.RUnlock()

	return len(pool.txsByHash)
}

// Snapshot describes the waiting transactions, in selection order
func (pool *unsignedTxPool) Snapshot() []*PooledTransactionInfo {
	pool.mut.RLock()
	txsHeap := make(transactionsHeap, 0, len(pool.txsByHash))
	for _, pooled := range pool.txsByHash {
		txsHeap = append(txsHeap, pooled)
	}
	pool.mut.RUnlock()

	heap.Init(&txsHeap)
	infos := make([]*PooledTransactionInfo, 0, txsHeap.Len())
	for txsHeap.Len() > 0 {
		pooled := heap.Pop(&txsHeap).(*pooledTransaction)
		infos = append(infos, &PooledTransactionInfo{
			Hash:          pooled.hash,
			Call:          pooled.tx.CallName(),
			Origin:        pooled.tx.Origin.Kind.String(),
			Priority:      pooled.valid.Priority,
			AddedAtHeight: pooled.addedAtHeight,
		})
	}

	return infos
}

// IsInterfaceNil returns true if there is no value under the interface
func (pool *unsignedTxPool) IsInterfaceNil() bool {
	return pool == nil
}
