package notify

import "codeberg.org/mutker/meteoctl/internal/errors"

const (
	ErrInvalidConfig  = errors.ErrorCode("notify_invalid_config")
	ErrInvalidAddress = errors.ErrorCode("notify_invalid_address")
	ErrClientInit     = errors.ErrorCode("notify_client_init_failed")
	ErrDispatchFailed = errors.ErrMail
)
