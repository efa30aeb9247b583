package thermal

import (
	"codeberg.org/mutker/meteoctl/internal/errors"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// temperatureDevice is the part of nvml.Device used here
type temperatureDevice interface {
	GetTemperature(sensor nvml.TemperatureSensors) (uint32, nvml.Return)
}

// NVML reads the core temperature of an NVIDIA GPU.
type NVML struct {
	device   temperatureDevice
	shutdown func() nvml.Return
}

// OpenNVML initializes NVML and binds to the GPU at index.
func OpenNVML(index int) (*NVML, error) {
	errFactory := errors.New()

	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil, errFactory.Wrap(ErrNVMLInit, newNVMLError(ret))
	}

	device, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		nvml.Shutdown()
		return nil, errFactory.Wrap(ErrDeviceNotFound, newNVMLError(ret))
	}

	return &NVML{device: device, shutdown: nvml.Shutdown}, nil
}

func (n *NVML) Read() (float64, error) {
	temp, ret := n.device.GetTemperature(nvml.TEMPERATURE_GPU)
	if ret != nvml.SUCCESS {
		return 0, errors.New().Wrap(ErrReadFailed, newNVMLError(ret))
	}

	return float64(temp), nil
}

func (n *NVML) Close() error {
	if n.shutdown == nil {
		return nil
	}

	if ret := n.shutdown(); ret != nvml.SUCCESS {
		return errors.New().Wrap(ErrShutdownFailed, newNVMLError(ret))
	}

	return nil
}
