package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/config"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(b byte) string {
	return "0x" + strings.Repeat("0"+string("0123456789abcdef"[b]), common.AccountIDLength)
}

func TestShippedConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("./config/config.toml")
	require.Nil(t, err)
	assert.Equal(t, common.DefaultFetchPeriodInBlocks, cfg.Oracle.FetchPeriodInBlocks)
	assert.Equal(t, "*:INFO", cfg.Logs.LogLevel)
}

func TestApplyFlagsOverrides(t *testing.T) {
	t.Parallel()

	t.Run("empty flags should not change the config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Api: config.ApiConfig{RestApiInterface: "localhost:8080", AdminKey: "key"}}
		applyFlagsOverrides(cfg, &flagsConfig{})
		assert.Equal(t, "localhost:8080", cfg.Api.RestApiInterface)
		assert.Equal(t, "key", cfg.Api.AdminKey)
		assert.False(t, cfg.Api.DebugMode)
	})
	t.Run("flags should override the config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Api: config.ApiConfig{RestApiInterface: "localhost:8080", AdminKey: "key"}}
		applyFlagsOverrides(cfg, &flagsConfig{
			restApiInterface: "off",
			restApiDebug:     true,
			adminKey:         "other key",
		})
		assert.Equal(t, "off", cfg.Api.RestApiInterface)
		assert.Equal(t, "other key", cfg.Api.AdminKey)
		assert.True(t, cfg.Api.DebugMode)
	})
}

func TestCreateGenesisCalls(t *testing.T) {
	t.Parallel()

	t.Run("nothing configured should return no calls", func(t *testing.T) {
		t.Parallel()

		calls, err := createGenesisCalls(config.OracleConfig{})
		require.Nil(t, err)
		assert.Empty(t, calls)
	})
	t.Run("invalid authority should error", func(t *testing.T) {
		t.Parallel()

		calls, err := createGenesisCalls(config.OracleConfig{Authorities: []string{"0x01"}})
		assert.True(t, errors.Is(err, common.ErrInvalidAccountLength))
		assert.Nil(t, calls)
	})
	t.Run("invalid custody account should error", func(t *testing.T) {
		t.Parallel()

		calls, err := createGenesisCalls(config.OracleConfig{
			Genesis: config.GenesisOracleConfig{
				CustodyAccount: "not hex",
				SourceURL:      "http://localhost/api",
			},
		})
		assert.NotNil(t, err)
		assert.Nil(t, calls)
	})
	t.Run("authorities should be queued before the kickoff", func(t *testing.T) {
		t.Parallel()

		cfg := config.OracleConfig{
			Authorities: []string{testAccount(1), testAccount(2)},
			Genesis: config.GenesisOracleConfig{
				CustodyAccount: testAccount(3),
				SourceName:     "htlc",
				SourceURL:      "http://localhost/api",
			},
		}

		calls, err := createGenesisCalls(cfg)
		require.Nil(t, err)
		require.Equal(t, 3, len(calls))

		authority, ok := calls[0].(*transaction.AddAuthorityCall)
		require.True(t, ok)
		assert.Equal(t, testAccount(1), common.EncodeHex(authority.Account))

		kickoff, ok := calls[2].(*transaction.KickoffFetchCall)
		require.True(t, ok)
		assert.Equal(t, testAccount(3), common.EncodeHex(kickoff.CustodyAccount))
		assert.Equal(t, []byte("htlc"), kickoff.SourceName)
		assert.Equal(t, []byte("http://localhost/api"), kickoff.SourceURL)
	})
}
