package htlcEvents

import "errors"

// ErrNilRawLog signals that a nil raw log has been provided
var ErrNilRawLog = errors.New("nil raw log")

// ErrMissingTopics signals that a log entry has no topics
var ErrMissingTopics = errors.New("missing topics")

// ErrUnknownEventSignature signals that the first topic does not match any known event
var ErrUnknownEventSignature = errors.New("unknown event signature")

// ErrNotEnoughTopics signals that a log entry carries fewer indexed topics than its event needs
var ErrNotEnoughTopics = errors.New("not enough topics")

// ErrInvalidHexField signals that a field is not a valid 0x prefixed hex value
var ErrInvalidHexField = errors.New("invalid hex field")

// ErrFieldTooShort signals that the data field does not hold all the words of its layout
var ErrFieldTooShort = errors.New("field too short")

// ErrValueOutOfRange signals that a numeric word does not fit its destination
var ErrValueOutOfRange = errors.New("value out of range")

// ErrInvalidAccount signals that the receiver tail could not be decoded into an account
var ErrInvalidAccount = errors.New("invalid account")

// ErrSelfTransferRejected signals that the receiver account is the bridge custody account
var ErrSelfTransferRejected = errors.New("receiver is the custody account")

// ErrAmountMismatch signals that the bridged amount differs from its mirrored amount or is not positive
var ErrAmountMismatch = errors.New("amount mismatch")

// ErrInvalidExpireHeight signals that the expire block precedes the event block
var ErrInvalidExpireHeight = errors.New("invalid expire height")
