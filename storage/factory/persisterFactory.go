package factory

import (
	"path/filepath"

	"github.com/multiversx/mx-chain-htlc-oracle-go/config"
	"github.com/multiversx/mx-chain-htlc-oracle-go/storage"
	"github.com/multiversx/mx-chain-storage-go/leveldb"
	"github.com/multiversx/mx-chain-storage-go/memorydb"
)

// PersisterFactory is the factory which will handle creating new databases
type PersisterFactory struct {
	workingDir string
}

// NewPersisterFactory will return a new instance of a PersisterFactory rooted in the provided directory
func NewPersisterFactory(workingDir string) *PersisterFactory {
	return &PersisterFactory{
		workingDir: workingDir,
	}
}

// Create will return a new instance of a DB described by the provided config
func (pf *PersisterFactory) Create(cfg config.DBConfig) (storage.Persister, error) {
	dbType := storage.DBType(cfg.Type)
	if dbType == storage.MemoryDB {
		return memorydb.New(), nil
	}

	if len(cfg.FilePath) == 0 {
		return nil, storage.ErrInvalidFilePath
	}
	path := filepath.Join(pf.workingDir, cfg.FilePath)

	switch dbType {
	case storage.LvlDB:
		return leveldb.NewDB(path, cfg.BatchDelaySeconds, cfg.MaxBatchSize, cfg.MaxOpenFiles)
	case storage.LvlDBSerial:
		return leveldb.NewSerialDB(path, cfg.BatchDelaySeconds, cfg.MaxBatchSize, cfg.MaxOpenFiles)
	default:
		return nil, storage.ErrNotSupportedDBType
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (pf *PersisterFactory) IsInterfaceNil() bool {
	return pf == nil
}
