package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[General]
    RoundDurationInMilliseconds = 6000
    MaxTransactionsPerBlock = 100

[Oracle]
    FetchPeriodInBlocks = 5
    ResponseChunkSize = 1024
    Authorities = ["0x01"]
    [Oracle.RequestHeader]
        Name = "X-Api-Key"
        Value = "secret"
    [Oracle.Genesis]
        CustodyAccount = "0xaa"
        SourceName = "htlc"
        SourceURL = "http://localhost/api"

[Pool]
    Capacity = 64

[SwapDataStorage.DB]
    FilePath = "SwapData"
    Type = "LvlDBSerial"
    BatchDelaySeconds = 2
    MaxBatchSize = 100
    MaxOpenFiles = 10

[SwapStatesStorage.DB]
    FilePath = "SwapStates"
    Type = "MemoryDB"

[OracleStateStorage.DB]
    FilePath = "OracleState"
    Type = "MemoryDB"

[Api]
    RestApiInterface = "localhost:8080"
    DebugMode = true
    AdminKey = "admin"
    RecentEventsCapacity = 50
    SimultaneousRequests = 100
    [Api.Logging]
        LoggingEnabled = true
        ThresholdInMicroSeconds = 1000

[Logs]
    LogLevel = "*:DEBUG"
`

func createExpectedConfig() Config {
	return Config{
		General: GeneralConfig{
			RoundDurationInMilliseconds: 6000,
			MaxTransactionsPerBlock:     100,
		},
		Oracle: OracleConfig{
			FetchPeriodInBlocks: 5,
			ResponseChunkSize:   1024,
			RequestHeader: RequestHeaderConfig{
				Name:  "X-Api-Key",
				Value: "secret",
			},
			Genesis: GenesisOracleConfig{
				CustodyAccount: "0xaa",
				SourceName:     "htlc",
				SourceURL:      "http://localhost/api",
			},
			Authorities: []string{"0x01"},
		},
		Pool: PoolConfig{
			Capacity: 64,
		},
		SwapDataStorage: StorageConfig{
			DB: DBConfig{
				FilePath:          "SwapData",
				Type:              "LvlDBSerial",
				BatchDelaySeconds: 2,
				MaxBatchSize:      100,
				MaxOpenFiles:      10,
			},
		},
		SwapStatesStorage: StorageConfig{
			DB: DBConfig{
				FilePath: "SwapStates",
				Type:     "MemoryDB",
			},
		},
		OracleStateStorage: StorageConfig{
			DB: DBConfig{
				FilePath: "OracleState",
				Type:     "MemoryDB",
			},
		},
		Api: ApiConfig{
			RestApiInterface:     "localhost:8080",
			DebugMode:            true,
			AdminKey:             "admin",
			RecentEventsCapacity: 50,
			SimultaneousRequests: 100,
			Logging: ApiLoggingConfig{
				LoggingEnabled:          true,
				ThresholdInMicroSeconds: 1000,
			},
		},
		Logs: LogsConfig{
			LogLevel: "*:DEBUG",
		},
	}
}

func TestTomlParser(t *testing.T) {
	t.Parallel()

	cfg := Config{}
	err := toml.Unmarshal([]byte(testConfig), &cfg)

	assert.Nil(t, err)
	assert.Equal(t, createExpectedConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Nil(t, cfg)
		assert.NotNil(t, err)
	})
	t.Run("malformed file should error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.Nil(t, os.WriteFile(path, []byte("[General\nRoundDurationInMilliseconds = "), os.ModePerm))

		cfg, err := LoadConfig(path)
		assert.Nil(t, cfg)
		assert.NotNil(t, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.Nil(t, os.WriteFile(path, []byte(testConfig), os.ModePerm))

		cfg, err := LoadConfig(path)
		require.Nil(t, err)
		assert.Equal(t, createExpectedConfig(), *cfg)
	})
}

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	t.Run("nil config should error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ErrNilConfig, CheckConfig(nil))
	})
	t.Run("zero fetch period should error", func(t *testing.T) {
		t.Parallel()

		cfg := createExpectedConfig()
		cfg.Oracle.FetchPeriodInBlocks = 0

		err := CheckConfig(&cfg)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})
	t.Run("missing storage type should error", func(t *testing.T) {
		t.Parallel()

		cfg := createExpectedConfig()
		cfg.SwapStatesStorage.DB.Type = ""

		err := CheckConfig(&cfg)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})
	t.Run("valid config should work", func(t *testing.T) {
		t.Parallel()

		cfg := createExpectedConfig()
		assert.Nil(t, CheckConfig(&cfg))
	})
}
