package errors

// Common error codes
const (
	// System errors
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrAlreadyRunning  ErrorCode = "already_running"

	// Configuration errors
	ErrInvalidConfig    ErrorCode = "invalid_configuration"
	ErrBindFlags        ErrorCode = "bind_flags_failed"
	ErrReadConfig       ErrorCode = "read_config_failed"
	ErrInvalidInterval  ErrorCode = "invalid_interval"
	ErrInvalidStatistic ErrorCode = "invalid_statistic"

	// Shutdown errors
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Application errors
	ErrInitApp  ErrorCode = "init_app_failed"
	ErrMainLoop ErrorCode = "main_loop_failed"
	ErrSensor   ErrorCode = "sensor_read_failed"
	ErrThermal  ErrorCode = "thermal_read_failed"
	ErrMail     ErrorCode = "mail_dispatch_failed"
	ErrMetrics  ErrorCode = "metrics_failed"
	ErrPIDFile  ErrorCode = "pid_file_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInvalidArgument:  "Invalid argument provided",
	ErrAlreadyRunning:   "Another instance is already running",
	ErrInvalidConfig:    "Invalid configuration",
	ErrBindFlags:        "Failed to bind flags",
	ErrReadConfig:       "Failed to read configuration",
	ErrInvalidInterval:  "Invalid interval value",
	ErrInvalidStatistic: "Invalid statistic",
	ErrShutdownFailed:   "Shutdown failed",
	ErrInitApp:          "Failed to initialize application",
	ErrMainLoop:         "Error in main loop",
	ErrSensor:           "Failed to read sensor",
	ErrThermal:          "Failed to read system temperature",
	ErrMail:             "Failed to dispatch mail",
	ErrMetrics:          "Metrics endpoint failed",
	ErrPIDFile:          "Failed to manage PID file",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
