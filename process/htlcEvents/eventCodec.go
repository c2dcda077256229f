package htlcEvents

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/htlc"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("process/htlcEvents")

// Event signatures (keccak256 of the solidity event declarations) emitted by the external HTLC contract
const (
	EventSignatureHTLC     = "0x5a0cc384a12a55445d4625db5d24f6a72177fd330644e2d4b3ea0ebd6f78c54d"
	EventSignatureClaimed  = "0x07a9dd1ef03da239626dc5c5bac1995991043d2b6e0e23ca789bbc0a16eb911f"
	EventSignatureRefunded = "0x215e15eef6d0300f9e89d940198e4f7fc22e44b7c80118c03571cd96da6c6c98"
)

const (
	minNumTopics = 4

	senderTopicIndex    = 1
	recipientTopicIndex = 2
	swapIDTopicIndex    = 3

	openSecretHashWord    = 0
	openHTLCTimestampWord = 1
	openExpireBlockWord   = 2
	openOutAmountWord     = 3
	openMirroredWord      = 4
	openReceiverWord      = 7

	claimedSecretWord   = 0
	claimedReceiverWord = 3

	refundedSecretHashWord = 0
	refundedReceiverWord   = 2
)

// ArgsEventCodec is the DTO used to create a new event codec
type ArgsEventCodec struct {
	Hasher common.Hasher
}

type eventCodec struct {
	hasher common.Hasher
}

// NewEventCodec creates a new instance able to turn raw indexer logs into HTLC records
func NewEventCodec(args ArgsEventCodec) (*eventCodec, error) {
	if check.IfNil(args.Hasher) {
		return nil, common.ErrNilHasher
	}

	return &eventCodec{
		hasher: args.Hasher,
	}, nil
}

// commonFields holds the fields shared by all three event layouts
type commonFields struct {
	contract    []byte
	sender      []byte
	recipient   []byte
	swapID      []byte
	eventBlock  uint64
	dataWords   *dataWords
	receiverAcc []byte
}

// Decode converts a raw log entry into a typed HTLC record
func (ec *eventCodec) Decode(raw *RawLog, meta DecodeMeta) (*htlc.EventHTLC, error) {
	if raw == nil {
		return nil, ErrNilRawLog
	}
	if len(raw.Topics) == 0 {
		return nil, ErrMissingTopics
	}

	switch raw.Topics[0] {
	case EventSignatureHTLC:
		return ec.decodeOpen(raw, meta)
	case EventSignatureClaimed:
		return ec.decodeTerminal(raw, meta, htlc.Claimed, claimedSecretWord, claimedReceiverWord)
	case EventSignatureRefunded:
		return ec.decodeTerminal(raw, meta, htlc.Refunded, refundedSecretHashWord, refundedReceiverWord)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventSignature, raw.Topics[0])
	}
}

func (ec *eventCodec) decodeOpen(raw *RawLog, meta DecodeMeta) (*htlc.EventHTLC, error) {
	fields, err := ec.decodeCommonFields(raw, meta, openReceiverWord)
	if err != nil {
		return nil, err
	}

	secretHash, err := fields.dataWords.bytesWord(openSecretHashWord)
	if err != nil {
		return nil, err
	}
	htlcTimestamp, err := fields.dataWords.uint64Word(openHTLCTimestampWord)
	if err != nil {
		return nil, err
	}
	expireBlock, err := fields.dataWords.uint64Word(openExpireBlockWord)
	if err != nil {
		return nil, err
	}
	outAmount, err := fields.dataWords.bigWord(openOutAmountWord)
	if err != nil {
		return nil, err
	}
	mirroredAmount, err := fields.dataWords.bigWord(openMirroredWord)
	if err != nil {
		return nil, err
	}
	eventTimestamp, err := parseHexUint64(raw.TimeStamp)
	if err != nil {
		return nil, err
	}

	if outAmount.Cmp(mirroredAmount) != 0 {
		return nil, fmt.Errorf("%w: amount %s, mirrored amount %s", ErrAmountMismatch, outAmount.String(), mirroredAmount.String())
	}
	if outAmount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrAmountMismatch)
	}
	if expireBlock < fields.eventBlock {
		return nil, fmt.Errorf("%w: expire block %d, event block %d", ErrInvalidExpireHeight, expireBlock, fields.eventBlock)
	}

	record := ec.newRecord(fields, meta, htlc.Open)
	record.SecretHash = secretHash
	record.HTLCTimestamp = htlcTimestamp
	record.EventTimestamp = eventTimestamp
	record.ExpireHeight = expireBlock - fields.eventBlock
	record.Amount = outAmount

	return record, nil
}

// decodeTerminal handles the Claimed and Refunded layouts, where the first word is the
// revealed secret or the secret hash and the receiver tail starts at receiverWord
func (ec *eventCodec) decodeTerminal(
	raw *RawLog,
	meta DecodeMeta,
	eventType htlc.HTLCType,
	secretWord int,
	receiverWord int,
) (*htlc.EventHTLC, error) {
	fields, err := ec.decodeCommonFields(raw, meta, receiverWord)
	if err != nil {
		return nil, err
	}

	secret, err := fields.dataWords.bytesWord(secretWord)
	if err != nil {
		return nil, err
	}

	record := ec.newRecord(fields, meta, eventType)
	record.SecretHash = secret
	record.Amount = big.NewInt(0)

	return record, nil
}

func (ec *eventCodec) decodeCommonFields(raw *RawLog, meta DecodeMeta, receiverWord int) (*commonFields, error) {
	if len(raw.Topics) < minNumTopics {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughTopics, len(raw.Topics), minNumTopics)
	}

	contract, err := decodeHex(raw.Address)
	if err != nil {
		return nil, fmt.Errorf("%w for contract address", err)
	}
	sender, err := decodeHex(raw.Topics[senderTopicIndex])
	if err != nil {
		return nil, fmt.Errorf("%w for sender topic", err)
	}
	recipient, err := decodeHex(raw.Topics[recipientTopicIndex])
	if err != nil {
		return nil, fmt.Errorf("%w for recipient topic", err)
	}
	_, err = decodeHex(raw.Topics[swapIDTopicIndex])
	if err != nil {
		return nil, fmt.Errorf("%w for swap id topic", err)
	}
	eventBlock, err := parseHexUint64(raw.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("%w for block number", err)
	}

	words, err := newDataWords(raw.Data)
	if err != nil {
		return nil, err
	}
	receiverAcc, err := decodeReceiver(words, receiverWord)
	if err != nil {
		return nil, err
	}
	if len(meta.CustodyAccount) > 0 && bytes.Equal(receiverAcc, meta.CustodyAccount) {
		return nil, ErrSelfTransferRejected
	}

	return &commonFields{
		contract:    contract,
		sender:      sender,
		recipient:   recipient,
		swapID:      ec.hasher.Compute(strings.TrimPrefix(raw.Topics[swapIDTopicIndex], hexPrefix)),
		eventBlock:  eventBlock,
		dataWords:   words,
		receiverAcc: receiverAcc,
	}, nil
}

func decodeReceiver(words *dataWords, receiverWord int) ([]byte, error) {
	tail, err := words.tail(receiverWord)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAccount, err.Error())
	}
	if len(tail) < common.AccountIDLength {
		return nil, fmt.Errorf("%w: receiver has %d bytes, need %d", ErrInvalidAccount, len(tail), common.AccountIDLength)
	}

	return tail[:common.AccountIDLength], nil
}

func (ec *eventCodec) newRecord(fields *commonFields, meta DecodeMeta, eventType htlc.HTLCType) *htlc.EventHTLC {
	return &htlc.EventHTLC{
		ExternalContractAddr: fields.contract,
		HTLCBlockNumber:      meta.LocalHeight,
		EventBlockNumber:     fields.eventBlock,
		SwapID:               fields.swapID,
		SenderAddr:           fields.sender,
		SenderChain:          htlc.ETHMain,
		ReceiverAddr:         fields.receiverAcc,
		ReceiverChain:        htlc.Local,
		RecipientAddr:        fields.recipient,
		EventType:            eventType,
	}
}

// DecodeBatch decodes all the provided raw logs, skipping (and logging) the ones that can not be decoded
func (ec *eventCodec) DecodeBatch(raws []*RawLog, meta DecodeMeta) []*htlc.EventHTLC {
	records := make([]*htlc.EventHTLC, 0, len(raws))
	for _, raw := range raws {
		record, err := ec.Decode(raw, meta)
		if errors.Is(err, ErrUnknownEventSignature) {
			log.Debug("skipped log entry with unknown event signature", "tx hash", txHashOf(raw), "error", err)
			continue
		}
		if err != nil {
			log.Warn("cannot decode htlc event", "tx hash", txHashOf(raw), "error", err)
			continue
		}

		if log.GetLevel() == logger.LogTrace {
			log.Trace("decoded htlc event", "record", spew.Sdump(record))
		}
		records = append(records, record)
	}

	return records
}

func txHashOf(raw *RawLog) string {
	if raw == nil {
		return ""
	}
	return raw.TransactionHash
}

// IsInterfaceNil returns true if there is no value under the interface
func (ec *eventCodec) IsInterfaceNil() bool {
	return ec == nil
}
