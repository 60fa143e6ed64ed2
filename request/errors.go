package request

import "errors"

// Errors returned by Build when a mandatory value is missing.
var (
	ErrEmptyRecipient   = errors.New("sms: recipient must not be empty")
	ErrEmptyContent     = errors.New("sms: content must not be empty")
	ErrEmptyServiceCode = errors.New("gas settings: service code must not be empty")
	ErrZeroStart        = errors.New("send window: start must be set")
	ErrEmptyUsername    = errors.New("gateway request: username must not be empty")
	ErrEmptyPassword    = errors.New("gateway request: password must not be empty")
)
