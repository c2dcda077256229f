package htlcEvents

// RawLog holds the raw string fields of one indexer log entry
type RawLog struct {
	Address          string   `mapstructure:"address"`
	Topics           []string `mapstructure:"topics"`
	Data             string   `mapstructure:"data"`
	BlockNumber      string   `mapstructure:"blockNumber"`
	TimeStamp        string   `mapstructure:"timeStamp"`
	TransactionHash  string   `mapstructure:"transactionHash"`
	TransactionIndex string   `mapstructure:"transactionIndex"`
}

// DecodeMeta holds the local side-band information needed when decoding a log entry
type DecodeMeta struct {
	LocalHeight    uint64
	CustodyAccount []byte
}
