package txpool

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/multiversx/mx-chain-htlc-oracle-go/process/dataValidators"
	"github.com/multiversx/mx-chain-htlc-oracle-go/testscommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockArgsUnsignedTxPool() ArgsUnsignedTxPool {
	return ArgsUnsignedTxPool{
		Validator:     dataValidators.NewUnsignedTxValidator(),
		Marshaller:    &marshal.JsonMarshalizer{},
		Hasher:        blake2b.NewBlake2b(),
		StatusHandler: testscommon.NewAppStatusHandlerMock(),
		Capacity:      10,
	}
}

func createIngestTx(blockNumber uint64) *transaction.Transaction {
	return transaction.NewUnsignedTransaction(&transaction.IngestCall{
		Records: []*htlc.EventHTLC{{EventBlockNumber: blockNumber}},
	})
}

// uniqueTagValidator gives every transaction its own provides tag and the provided priority
func uniqueTagValidator(priorityByBlock map[uint64]uint64, longevity uint64) *testscommon.UnsignedTxValidatorStub {
	return &testscommon.UnsignedTxValidatorStub{
		ValidateUnsignedCalled: func(tx *transaction.Transaction) (*dataValidators.ValidTransaction, error) {
			blockNumber := tx.Call.(*transaction.IngestCall).Records[0].EventBlockNumber
			return &dataValidators.ValidTransaction{
				Priority:  priorityByBlock[blockNumber],
				Provides:  [][]byte{[]byte(fmt.Sprintf("tag%d", blockNumber))},
				Longevity: longevity,
			}, nil
		},
	}
}

func TestNewUnsignedTxPool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(args *ArgsUnsignedTxPool)
		expectedErr error
	}{
		{"nil validator", func(args *ArgsUnsignedTxPool) { args.Validator = nil }, ErrNilTxValidator},
		{"nil marshaller", func(args *ArgsUnsignedTxPool) { args.Marshaller = nil }, common.ErrNilMarshalizer},
		{"nil hasher", func(args *ArgsUnsignedTxPool) { args.Hasher = nil }, common.ErrNilHasher},
		{"nil status handler", func(args *ArgsUnsignedTxPool) { args.StatusHandler = nil }, common.ErrNilStatusHandler},
		{"zero capacity", func(args *ArgsUnsignedTxPool) { args.Capacity = 0 }, ErrInvalidPoolCapacity},
		{"should work", func(args *ArgsUnsignedTxPool) {}, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := createMockArgsUnsignedTxPool()
			tt.mutate(&args)
			pool, err := NewUnsignedTxPool(args)
			assert.True(t, errors.Is(err, tt.expectedErr))
			assert.Equal(t, tt.expectedErr != nil, pool.IsInterfaceNil())
		})
	}
}

func TestUnsignedTxPool_AddUnsigned(t *testing.T) {
	t.Parallel()

	t.Run("rejected by validator", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsUnsignedTxPool()
		statusHandler := testscommon.NewAppStatusHandlerMock()
		args.StatusHandler = statusHandler
		pool, _ := NewUnsignedTxPool(args)

		hash, err := pool.AddUnsigned(transaction.NewUnsignedTransaction(&transaction.KillFetchCall{}), 1)
		assert.Nil(t, hash)
		assert.True(t, errors.Is(err, dataValidators.ErrNoUnsignedValidator))
		assert.Equal(t, 0, pool.Count())
		assert.Equal(t, uint64(1), statusHandler.GetUint64(common.MetricPoolRejections))
	})
	t.Run("second ingestion is rejected while the first one waits", func(t *testing.T) {
		t.Parallel()

		pool, _ := NewUnsignedTxPool(createMockArgsUnsignedTxPool())

		hash, err := pool.AddUnsigned(createIngestTx(1), 5)
		require.Nil(t, err)
		assert.Len(t, hash, common.HashSize)

		_, err = pool.AddUnsigned(createIngestTx(2), 5)
		assert.True(t, errors.Is(err, ErrTxAlreadyProvided))

		_, err = pool.AddUnsigned(createIngestTx(1), 5)
		assert.Equal(t, ErrTxAlreadyInPool, err)
		assert.Equal(t, 1, pool.Count())

		selected := pool.SelectTransactions(10, 6)
		require.Len(t, selected, 1)

		_, err = pool.AddUnsigned(createIngestTx(2), 6)
		assert.Nil(t, err)
	})
	t.Run("capacity is enforced", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsUnsignedTxPool()
		args.Capacity = 2
		args.Validator = uniqueTagValidator(nil, 100)
		pool, _ := NewUnsignedTxPool(args)

		_, err := pool.AddUnsigned(createIngestTx(1), 1)
		require.Nil(t, err)
		_, err = pool.AddUnsigned(createIngestTx(2), 1)
		require.Nil(t, err)
		_, err = pool.AddUnsigned(createIngestTx(3), 1)
		assert.Equal(t, ErrPoolFull, err)
	})
}

func TestUnsignedTxPool_SelectTransactions(t *testing.T) {
	t.Parallel()

	t.Run("ordered by priority then arrival", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsUnsignedTxPool()
		args.Validator = uniqueTagValidator(map[uint64]uint64{1: 5, 2: 10, 3: 5, 4: 1}, 100)
		pool, _ := NewUnsignedTxPool(args)

		for blockNumber := uint64(1); blockNumber <= 4; blockNumber++ {
			_, err := pool.AddUnsigned(createIngestTx(blockNumber), 1)
			require.Nil(t, err)
		}

		snapshot := pool.Snapshot()
		require.Len(t, snapshot, 4)
		assert.Equal(t, uint64(10), snapshot[0].Priority)
		assert.Equal(t, "ingest", snapshot[0].Call)
		assert.Equal(t, "none", snapshot[0].Origin)

		selected := pool.SelectTransactions(3, 2)
		require.Len(t, selected, 3)
		blockOf := func(tx *transaction.Transaction) uint64 {
			return tx.Call.(*transaction.IngestCall).Records[0].EventBlockNumber
		}
		assert.Equal(t, uint64(2), blockOf(selected[0]))
		assert.Equal(t, uint64(1), blockOf(selected[1]))
		assert.Equal(t, uint64(3), blockOf(selected[2]))
		assert.Equal(t, 1, pool.Count())

		selected = pool.SelectTransactions(3, 2)
		require.Len(t, selected, 1)
		assert.Equal(t, uint64(4), blockOf(selected[0]))
		assert.Empty(t, pool.SelectTransactions(3, 2))
	})
	t.Run("expired transactions are dropped", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsUnsignedTxPool()
		args.Validator = uniqueTagValidator(nil, 2)
		pool, _ := NewUnsignedTxPool(args)

		_, _ = pool.AddUnsigned(createIngestTx(1), 10)
		_, _ = pool.AddUnsigned(createIngestTx(2), 11)

		selected := pool.SelectTransactions(10, 13)
		require.Len(t, selected, 1)
		assert.Equal(t, 0, pool.Count())
	})
}

func TestUnsignedTxPool_ConcurrentOperations(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		args := createMockArgsUnsignedTxPool()
		args.Capacity = 1000
		args.Validator = uniqueTagValidator(nil, 100)
		pool, _ := NewUnsignedTxPool(args)

		numCalls := 1000
		wg := sync.WaitGroup{}
		wg.Add(numCalls)

		for i := 0; i < numCalls; i++ {
			go func(idx int) {
				switch idx % 4 {
				case 0:
					_, _ = pool.AddUnsigned(createIngestTx(uint64(idx)), 1)
				case 1:
					_ = pool.SelectTransactions(2, 1)
				case 2:
					_ = pool.Snapshot()
				case 3:
					_ = pool.Count()
				}

				wg.Done()
			}(i)
		}

		wg.Wait()
	})
}
