package htlcEvents

import (
	"reflect"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
)

const (
	statusOK  = "1"
	messageOK = "OK"
)

type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Result  interface{} `json:"result"`
}

// ArgsEnvelopeParser is the DTO used to create a new envelope parser
type ArgsEnvelopeParser struct {
	Marshaller marshal.Marshalizer
}

type envelopeParser struct {
	marshaller marshal.Marshalizer
}

// NewEnvelopeParser creates a parser for the {status, message, result} indexer responses
func NewEnvelopeParser(args ArgsEnvelopeParser) (*envelopeParser, error) {
	if check.IfNil(args.Marshaller) {
		return nil, common.ErrNilMarshalizer
	}

	return &envelopeParser{
		marshaller: args.Marshaller,
	}, nil
}

// Parse extracts the raw log entries of an indexer response. It never fails: malformed
// responses are logged and yield an empty slice
func (ep *envelopeParser) Parse(body []byte) []*RawLog {
	rawLogs := make([]*RawLog, 0)
	if !utf8.Valid(body) {
		log.Debug("envelopeParser.Parse: response body is not valid utf-8", "num bytes", len(body))
		return rawLogs
	}

	env := &envelope{}
	err := ep.marshaller.Unmarshal(env, body)
	if err != nil {
		log.Debug("envelopeParser.Parse: cannot unmarshal response", "error", err)
		return rawLogs
	}
	if env.Status != statusOK || env.Message != messageOK {
		log.Debug("envelopeParser.Parse: indexer returned an error envelope",
			"status", env.Status, "message", env.Message)
		return rawLogs
	}

	results, ok := env.Result.([]interface{})
	if !ok {
		log.Debug("envelopeParser.Parse: result is not an array")
		return rawLogs
	}

	for idx, element := range results {
		rawLog, errDecode := decodeRawLog(element)
		if errDecode != nil {
			log.Debug("envelopeParser.Parse: skipped result element", "index", idx, "error", errDecode)
			continue
		}
		if len(rawLog.Topics) == 0 {
			log.Debug("envelopeParser.Parse: skipped result element without topics", "index", idx,
				"tx hash", rawLog.TransactionHash)
			continue
		}

		rawLogs = append(rawLogs, rawLog)
	}

	return rawLogs
}

func decodeRawLog(element interface{}) (*RawLog, error) {
	rawLog := &RawLog{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     rawLog,
		TagName:    "mapstructure",
		DecodeHook: mistypedFieldsHook,
	})
	if err != nil {
		return nil, err
	}

	err = decoder.Decode(element)
	if err != nil {
		return nil, err
	}

	return rawLog, nil
}

// mistypedFieldsHook leaves a string field empty when its value is not a string and keeps only the
// string elements of a string slice, so one mistyped field does not discard the whole entry
func mistypedFieldsHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch {
	case to.Kind() == reflect.String:
		if _, isString := data.(string); !isString {
			return "", nil
		}
	case to.Kind() == reflect.Slice && to.Elem().Kind() == reflect.String:
		elements, isSlice := data.([]interface{})
		if !isSlice {
			return []string{}, nil
		}

		values := make([]string, 0, len(elements))
		for _, element := range elements {
			value, isString := element.(string)
			if isString {
				values = append(values, value)
			}
		}
		return values, nil
	}

	return data, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ep *envelopeParser) IsInterfaceNil() bool {
	return ep == nil
}
