package common

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DecodeAccount decodes a 0x prefixed hex account identifier, checking its length
func DecodeAccount(account string) ([]byte, error) {
	buff, err := hexutil.Decode(account)
	if err != nil {
		return nil, err
	}
	if len(buff) != AccountIDLength {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrInvalidAccountLength, len(buff), AccountIDLength)
	}

	return buff, nil
}

// EncodeHex returns the 0x prefixed hex representation of the provided bytes
func EncodeHex(buff []byte) string {
	if len(buff) == 0 {
		return ""
	}

	return hexutil.Encode(buff)
}
