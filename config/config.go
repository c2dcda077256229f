package config

// GeneralConfig holds the block production settings
type GeneralConfig struct {
	RoundDurationInMilliseconds uint64 `validate:"min=100"`
	MaxTransactionsPerBlock     int    `validate:"min=1"`
}

// RequestHeaderConfig holds the optional single header sent along with every indexer request
type RequestHeaderConfig struct {
	Name  string
	Value string
}

// GenesisOracleConfig holds the fetch job queued as a root call when the node starts
type GenesisOracleConfig struct {
	CustodyAccount string
	SourceName     string
	SourceURL      string
}

// OracleConfig holds the off-chain fetching settings
type OracleConfig struct {
	FetchPeriodInBlocks uint64 `validate:"min=1"`
	ResponseChunkSize   int    `validate:"min=1"`
	RequestHeader       RequestHeaderConfig
	Genesis             GenesisOracleConfig
	Authorities         []string
}

// PoolConfig holds the unsigned transactions pool settings
type PoolConfig struct {
	Capacity int `validate:"min=1"`
}

// DBConfig holds the configurable elements of a persister
type DBConfig struct {
	FilePath          string
	Type              string `validate:"required"`
	BatchDelaySeconds int
	MaxBatchSize      int
	MaxOpenFiles      int
}

// StorageConfig will map the storage unit configuration
type StorageConfig struct {
	DB DBConfig
}

// ApiConfig holds the REST API settings
type ApiConfig struct {
	RestApiInterface     string
	DebugMode            bool
	AdminKey             string
	RecentEventsCapacity int    `validate:"min=1"`
	SimultaneousRequests uint32 `validate:"min=1"`
	Logging              ApiLoggingConfig
}

// ApiLoggingConfig holds the settings of the slow or failed requests logger
type ApiLoggingConfig struct {
	LoggingEnabled          bool
	ThresholdInMicroSeconds int
}

// LogsConfig holds the logger settings
type LogsConfig struct {
	LogLevel string
}

// Config will hold the entire application configuration parameters
type Config struct {
	General            GeneralConfig
	Oracle             OracleConfig
	Pool               PoolConfig
	SwapDataStorage    StorageConfig
	SwapStatesStorage  StorageConfig
	OracleStateStorage StorageConfig
	Api                ApiConfig
	Logs               LogsConfig
}
