package sensor

import "codeberg.org/mutker/meteoctl/internal/errors"

const (
	// Initialization Errors
	ErrHostInit       = errors.ErrorCode("sensor_host_init_failed")
	ErrBusOpen        = errors.ErrorCode("sensor_bus_open_failed")
	ErrUnexpectedChip = errors.ErrorCode("sensor_unexpected_chip")
	ErrConfigure      = errors.ErrorCode("sensor_configure_failed")
	ErrCalibration    = errors.ErrorCode("sensor_calibration_invalid")

	// Read Errors
	ErrReadFailed = errors.ErrorCode("sensor_read_failed")
	ErrNotReady   = errors.ErrorCode("sensor_not_ready")
)
