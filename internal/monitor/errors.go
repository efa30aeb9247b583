package monitor

import "codeberg.org/mutker/meteoctl/internal/errors"

const (
	ErrInvalidInterval = errors.ErrInvalidInterval
	ErrMissingSensor   = errors.ErrorCode("monitor_missing_sensor")
	ErrMissingMailer   = errors.ErrorCode("monitor_missing_mailer")
)
