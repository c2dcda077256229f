package htlcEvents

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	hexPrefix  = "0x"
	wordHexLen = 64
)

// dataWords gives access to the fixed width 32 byte words of an event data field
type dataWords struct {
	payload string
}

func newDataWords(data string) (*dataWords, error) {
	if !strings.HasPrefix(data, hexPrefix) {
		return nil, fmt.Errorf("%w: data is missing the %s prefix", ErrInvalidHexField, hexPrefix)
	}

	return &dataWords{payload: data[len(hexPrefix):]}, nil
}

func (dw *dataWords) word(index int) (string, error) {
	start := index * wordHexLen
	end := start + wordHexLen
	if len(dw.payload) < end {
		return "", fmt.Errorf("%w: data has %d hex chars, word %d needs %d", ErrFieldTooShort, len(dw.payload), index, end)
	}

	return dw.payload[start:end], nil
}

func (dw *dataWords) bytesWord(index int) ([]byte, error) {
	word, err := dw.word(index)
	if err != nil {
		return nil, err
	}

	return decodeHex(hexPrefix + word)
}

func (dw *dataWords) bigWord(index int) (*big.Int, error) {
	word, err := dw.word(index)
	if err != nil {
		return nil, err
	}

	return parseHexDigits(word)
}

func (dw *dataWords) uint64Word(index int) (uint64, error) {
	value, err := dw.bigWord(index)
	if err != nil {
		return 0, err
	}
	if !value.IsUint64() {
		return 0, fmt.Errorf("%w: word %d", ErrValueOutOfRange, index)
	}

	return value.Uint64(), nil
}

// tail returns the bytes starting at the provided word index up to the end of the data
func (dw *dataWords) tail(index int) ([]byte, error) {
	start := index * wordHexLen
	if len(dw.payload) <= start {
		return nil, fmt.Errorf("%w: data has %d hex chars, tail starts at %d", ErrFieldTooShort, len(dw.payload), start)
	}

	return decodeHex(hexPrefix + dw.payload[start:])
}

func decodeHex(value string) ([]byte, error) {
	buff, err := hexutil.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHexField, err.Error())
	}

	return buff, nil
}

// parseHexUint64 parses a 0x prefixed big-endian hex number of any length
func parseHexUint64(value string) (uint64, error) {
	if !strings.HasPrefix(value, hexPrefix) {
		return 0, fmt.Errorf("%w: %q is missing the %s prefix", ErrInvalidHexField, value, hexPrefix)
	}

	number, err := parseHexDigits(value[len(hexPrefix):])
	if err != nil {
		return 0, err
	}
	if !number.IsUint64() {
		return 0, fmt.Errorf("%w: %s", ErrValueOutOfRange, value)
	}

	return number.Uint64(), nil
}

func parseHexDigits(digits string) (*big.Int, error) {
	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: empty number", ErrInvalidHexField)
	}
	for _, c := range digits {
		if !isHexDigit(c) {
			return nil, fmt.Errorf("%w: %q is not a hex number", ErrInvalidHexField, digits)
		}
	}

	number, ok := big.NewInt(0).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a hex number", ErrInvalidHexField, digits)
	}

	return number, nil
}

func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
