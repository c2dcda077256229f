package htlcEvents

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testContract    = "0x5e2b8dc8e4a0e1c2b4b1a3e9ff1f5b2a3c4d5e6f"
	testSenderTopic = "0x000000000000000000000000a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0"
	testRecipient   = "0x000000000000000000000000b1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0"
	testSwapIDTopic = "0x1111111111111111111111111111111111111111111111111111111111111111"
	testSecretHash  = "2222222222222222222222222222222222222222222222222222222222222222"
	testEventBlock  = uint64(0x9a1)
)

var testReceiver = bytes.Repeat([]byte{0xAB}, common.AccountIDLength)

func numberWord(value uint64) string {
	return fmt.Sprintf("%064x", value)
}

func createOpenData(amount uint64, mirrored uint64, expireBlock uint64, receiver []byte) string {
	return hexPrefix +
		testSecretHash +
		numberWord(1600000000) +
		numberWord(expireBlock) +
		numberWord(amount) +
		numberWord(mirrored) +
		numberWord(0) +
		numberWord(0) +
		hex.EncodeToString(receiver)
}

func createOpenRawLog() *RawLog {
	return &RawLog{
		Address:         testContract,
		Topics:          []string{EventSignatureHTLC, testSenderTopic, testRecipient, testSwapIDTopic},
		Data:            createOpenData(1000, 1000, testEventBlock+100, testReceiver),
		BlockNumber:     fmt.Sprintf("0x%x", testEventBlock),
		TimeStamp:       "0x5f5e1000",
		TransactionHash: "0xdeadbeef",
	}
}

func createClaimedRawLog() *RawLog {
	return &RawLog{
		Address: testContract,
		Topics:  []string{EventSignatureClaimed, testSenderTopic, testRecipient, testSwapIDTopic},
		Data: hexPrefix +
			testSecretHash +
			numberWord(0) +
			numberWord(0) +
			hex.EncodeToString(testReceiver),
		BlockNumber: fmt.Sprintf("0x%x", testEventBlock+10),
		TimeStamp:   "0x5f5e1010",
	}
}

func createRefundedRawLog() *RawLog {
	return &RawLog{
		Address: testContract,
		Topics:  []string{EventSignatureRefunded, testSenderTopic, testRecipient, testSwapIDTopic},
		Data: hexPrefix +
			testSecretHash +
			numberWord(0) +
			hex.EncodeToString(testReceiver),
		BlockNumber: fmt.Sprintf("0x%x", testEventBlock+200),
	}
}

func createTestCodec(t *testing.T) *eventCodec {
	codec, err := NewEventCodec(ArgsEventCodec{Hasher: blake2b.NewBlake2b()})
	require.Nil(t, err)

	return codec
}

// blake2b-256 of the 64 hex characters of testSwapIDTopic, without the 0x prefix
const expectedSwapIDHex = "5cdbdb8963a47c9e1c0058adb1db2a5748248a240be05fc2e006f2550bd462be"

func expectedSwapID() []byte {
	swapID, _ := hex.DecodeString(expectedSwapIDHex)
	return swapID
}

func TestNewEventCodec(t *testing.T) {
	t.Parallel()

	t.Run("nil hasher should error", func(t *testing.T) {
		t.Parallel()

		codec, err := NewEventCodec(ArgsEventCodec{})
		assert.True(t, codec.IsInterfaceNil())
		assert.Equal(t, common.ErrNilHasher, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		codec, err := NewEventCodec(ArgsEventCodec{Hasher: blake2b.NewBlake2b()})
		assert.False(t, codec.IsInterfaceNil())
		assert.Nil(t, err)
	})
}

func TestEventCodec_DecodeOpen(t *testing.T) {
	t.Parallel()

	codec := createTestCodec(t)
	meta := DecodeMeta{LocalHeight: 42}

	record, err := codec.Decode(createOpenRawLog(), meta)
	require.Nil(t, err)

	expectedContract, _ := hex.DecodeString(strings.TrimPrefix(testContract, hexPrefix))
	expectedSecretHash, _ := hex.DecodeString(testSecretHash)
	assert.Equal(t, htlc.Open, record.EventType)
	assert.Equal(t, expectedSwapID(), record.SwapID)
	assert.Len(t, record.SwapID, common.HashSize)
	assert.Equal(t, expectedContract, record.ExternalContractAddr)
	assert.Equal(t, expectedSecretHash, record.SecretHash)
	assert.Equal(t, uint64(42), record.HTLCBlockNumber)
	assert.Equal(t, testEventBlock, record.EventBlockNumber)
	assert.Equal(t, uint64(100), record.ExpireHeight)
	assert.Equal(t, uint64(1600000000), record.HTLCTimestamp)
	assert.Equal(t, uint64(0x5f5e1000), record.EventTimestamp)
	assert.Equal(t, big.NewInt(1000), record.Amount)
	assert.Equal(t, testReceiver, record.ReceiverAddr)
	assert.Equal(t, htlc.ETHMain, record.SenderChain)
	assert.Equal(t, htlc.Local, record.ReceiverChain)
	assert.Len(t, record.SenderAddr, 32)
	assert.Len(t, record.RecipientAddr, 32)
}

func TestEventCodec_DecodeOpenErrors(t *testing.T) {
	t.Parallel()

	codec := createTestCodec(t)

	t.Run("amount differs from mirrored amount", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Data = createOpenData(1000, 999, testEventBlock+100, testReceiver)

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrAmountMismatch))
	})
	t.Run("zero amount", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Data = createOpenData(0, 0, testEventBlock+100, testReceiver)

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrAmountMismatch))
	})
	t.Run("expire block before event block", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Data = createOpenData(1000, 1000, testEventBlock-1, testReceiver)

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrInvalidExpireHeight))
	})
	t.Run("expire block equal to event block gives zero expire height", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Data = createOpenData(1000, 1000, testEventBlock, testReceiver)

		record, err := codec.Decode(raw, DecodeMeta{})
		require.Nil(t, err)
		assert.Equal(t, uint64(0), record.ExpireHeight)
	})
	t.Run("receiver is the custody account", func(t *testing.T) {
		t.Parallel()

		record, err := codec.Decode(createOpenRawLog(), DecodeMeta{CustodyAccount: testReceiver})
		assert.Nil(t, record)
		assert.Equal(t, ErrSelfTransferRejected, err)
	})
	t.Run("receiver too short", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Data = createOpenData(1000, 1000, testEventBlock+100, testReceiver[:31])

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrInvalidAccount))
	})
	t.Run("missing receiver tail", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Data = createOpenData(1000, 1000, testEventBlock+100, nil)

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrInvalidAccount))
	})
	t.Run("data too short", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Data = hexPrefix + testSecretHash + numberWord(1)

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrInvalidAccount))
	})
	t.Run("non hex word", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Data = strings.Replace(raw.Data, testSecretHash, strings.Repeat("z", wordHexLen), 1)

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrInvalidHexField))
	})
	t.Run("non hex topic", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Topics[3] = "0xnothex"

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrInvalidHexField))
	})
	t.Run("signed block number", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.BlockNumber = "0x-1"

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrInvalidHexField))
	})
	t.Run("block number does not fit", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.BlockNumber = "0x1" + strings.Repeat("0", 16)

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrValueOutOfRange))
	})
	t.Run("not enough topics", func(t *testing.T) {
		t.Parallel()

		raw := createOpenRawLog()
		raw.Topics = raw.Topics[:3]

		record, err := codec.Decode(raw, DecodeMeta{})
		assert.Nil(t, record)
		assert.True(t, errors.Is(err, ErrNotEnoughTopics))
	})
}

func TestEventCodec_DecodeReceiverUsesFirst32Bytes(t *testing.T) {
	t.Parallel()

	codec := createTestCodec(t)
	longReceiver := append(append(make([]byte, 0), testReceiver...), bytes.Repeat([]byte{0xCD}, 8)...)
	raw := createOpenRawLog()
	raw.Data = createOpenData(1000, 1000, testEventBlock+100, longReceiver)

	record, err := codec.Decode(raw, DecodeMeta{})
	require.Nil(t, err)
	assert.Equal(t, testReceiver, record.ReceiverAddr)
}

func TestEventCodec_DecodeClaimed(t *testing.T) {
	t.Parallel()

	codec := createTestCodec(t)

	record, err := codec.Decode(createClaimedRawLog(), DecodeMeta{LocalHeight: 77})
	require.Nil(t, err)

	expectedSecret, _ := hex.DecodeString(testSecretHash)
	assert.Equal(t, htlc.Claimed, record.EventType)
	assert.Equal(t, expectedSwapID(), record.SwapID)
	assert.Equal(t, expectedSecret, record.SecretHash)
	assert.Equal(t, testReceiver, record.ReceiverAddr)
	assert.Equal(t, uint64(77), record.HTLCBlockNumber)
	assert.Equal(t, testEventBlock+10, record.EventBlockNumber)
	assert.Equal(t, big.NewInt(0), record.Amount)
	assert.Zero(t, record.ExpireHeight)
	assert.Zero(t, record.HTLCTimestamp)
	assert.Zero(t, record.EventTimestamp)
}

func TestEventCodec_DecodeRefunded(t *testing.T) {
	t.Parallel()

	codec := createTestCodec(t)

	record, err := codec.Decode(createRefundedRawLog(), DecodeMeta{LocalHeight: 5})
	require.Nil(t, err)

	assert.Equal(t, htlc.Refunded, record.EventType)
	assert.Equal(t, expectedSwapID(), record.SwapID)
	assert.Equal(t, testReceiver, record.ReceiverAddr)
	assert.Equal(t, big.NewInt(0), record.Amount)

	_, err = codec.Decode(createRefundedRawLog(), DecodeMeta{CustodyAccount: testReceiver})
	assert.Equal(t, ErrSelfTransferRejected, err)
}

func TestEventCodec_DecodeUnknownSignature(t *testing.T) {
	t.Parallel()

	codec := createTestCodec(t)
	raw := createOpenRawLog()
	raw.Topics[0] = "0x" + strings.Repeat("0", wordHexLen)

	record, err := codec.Decode(raw, DecodeMeta{})
	assert.Nil(t, record)
	assert.True(t, errors.Is(err, ErrUnknownEventSignature))

	record, err = codec.Decode(&RawLog{}, DecodeMeta{})
	assert.Nil(t, record)
	assert.Equal(t, ErrMissingTopics, err)

	record, err = codec.Decode(nil, DecodeMeta{})
	assert.Nil(t, record)
	assert.Equal(t, ErrNilRawLog, err)
}

func TestEventCodec_DecodeBatch(t *testing.T) {
	t.Parallel()

	codec := createTestCodec(t)

	unknown := createOpenRawLog()
	unknown.Topics[0] = EventSignatureHTLC[:len(EventSignatureHTLC)-1] + "0"
	mismatched := createOpenRawLog()
	mismatched.Data = createOpenData(2, 1, testEventBlock+1, testReceiver)

	records := codec.DecodeBatch(
		[]*RawLog{createOpenRawLog(), unknown, nil, mismatched, createClaimedRawLog(), createRefundedRawLog()},
		DecodeMeta{LocalHeight: 3},
	)
	require.Len(t, records, 3)
	assert.Equal(t, htlc.Open, records[0].EventType)
	assert.Equal(t, htlc.Claimed, records[1].EventType)
	assert.Equal(t, htlc.Refunded, records[2].EventType)

	assert.Empty(t, codec.DecodeBatch(nil, DecodeMeta{}))
}

func TestEventCodec_SwapIDHashesTopicText(t *testing.T) {
	t.Parallel()

	codec := createTestCodec(t)
	hasher := blake2b.NewBlake2b()

	record, err := codec.Decode(createOpenRawLog(), DecodeMeta{})
	require.Nil(t, err)
	assert.Equal(t, hasher.Compute(strings.Repeat("1", wordHexLen)), record.SwapID)

	raw := createClaimedRawLog()
	raw.Topics[swapIDTopicIndex] = "0x" + strings.Repeat("ab", common.HashSize)
	record, err = codec.Decode(raw, DecodeMeta{})
	require.Nil(t, err)
	assert.Equal(t, hasher.Compute(strings.Repeat("ab", common.HashSize)), record.SwapID)
	assert.NotEqual(t, hasher.Compute(string(bytes.Repeat([]byte{0xab}, common.HashSize))), record.SwapID)
}
