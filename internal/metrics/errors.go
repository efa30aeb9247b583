package metrics

import "codeberg.org/mutker/meteoctl/internal/errors"

const (
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidListen = errors.ErrorCode("metrics_invalid_listen_address")
	ErrServe         = errors.ErrMetrics
	ErrShutdown      = errors.ErrShutdownFailed
)
