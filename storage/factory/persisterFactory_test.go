package factory_test

import (
	"testing"

	"github.com/multiversx/mx-chain-htlc-oracle-go/config"
	"github.com/multiversx/mx-chain-htlc-oracle-go/storage"
	"github.com/multiversx/mx-chain-htlc-oracle-go/storage/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDefaultDBConfig(dbType storage.DBType) config.DBConfig {
	return config.DBConfig{
		FilePath:          "SwapData",
		Type:              string(dbType),
		BatchDelaySeconds: 2,
		MaxBatchSize:      100,
		MaxOpenFiles:      10,
	}
}

func TestNewPersisterFactory(t *testing.T) {
	t.Parallel()

	pf := factory.NewPersisterFactory(t.TempDir())
	assert.False(t, pf.IsInterfaceNil())
}

func TestPersisterFactory_Create(t *testing.T) {
	t.Parallel()

	t.Run("unknown db type should fail", func(t *testing.T) {
		t.Parallel()

		pf := factory.NewPersisterFactory(t.TempDir())
		p, err := pf.Create(createDefaultDBConfig("BoltDB"))
		assert.Nil(t, p)
		assert.Equal(t, storage.ErrNotSupportedDBType, err)
	})
	t.Run("empty file path should fail", func(t *testing.T) {
		t.Parallel()

		cfg := createDefaultDBConfig(storage.LvlDBSerial)
		cfg.FilePath = ""

		pf := factory.NewPersisterFactory(t.TempDir())
		p, err := pf.Create(cfg)
		assert.Nil(t, p)
		assert.Equal(t, storage.ErrInvalidFilePath, err)
	})
	t.Run("memory db should work", func(t *testing.T) {
		t.Parallel()

		pf := factory.NewPersisterFactory("")
		p, err := pf.Create(createDefaultDBConfig(storage.MemoryDB))
		require.Nil(t, err)
		require.NotNil(t, p)

		require.Nil(t, p.Put([]byte("key"), []byte("value")))
		assert.Nil(t, p.Has([]byte("key")))
	})
	t.Run("serial leveldb should work", func(t *testing.T) {
		t.Parallel()

		pf := factory.NewPersisterFactory(t.TempDir())
		p, err := pf.Create(createDefaultDBConfig(storage.LvlDBSerial))
		require.Nil(t, err)
		require.NotNil(t, p)

		require.Nil(t, p.Put([]byte("key"), []byte("value")))
		val, err := p.Get([]byte("key"))
		assert.Nil(t, err)
		assert.Equal(t, []byte("value"), val)
		assert.Nil(t, p.Close())
	})
}
