package thermal

import (
	"codeberg.org/mutker/meteoctl/internal/errors"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

const (
	ErrUnknownSource = errors.ErrorCode("thermal_unknown_source")
	ErrReadFailed    = errors.ErrorCode("thermal_read_failed")
	ErrParseFailed   = errors.ErrorCode("thermal_parse_failed")

	// NVML Errors
	ErrNVMLInit       = errors.ErrorCode("thermal_nvml_init_failed")
	ErrDeviceNotFound = errors.ErrorCode("thermal_nvml_device_not_found")
	ErrShutdownFailed = errors.ErrorCode("thermal_nvml_shutdown_failed")
)

// nvmlError represents an NVML-specific error
type nvmlError struct {
	ret nvml.Return
}

func (e nvmlError) Error() string {
	return nvml.ErrorString(e.ret)
}

// newNVMLError creates an error from an NVML return code
func newNVMLError(ret nvml.Return) error {
	if ret == nvml.SUCCESS {
		return nil
	}
	return &nvmlError{ret: ret}
}
