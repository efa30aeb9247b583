package sensor

import (
	"io"
	"math"

	"codeberg.org/mutker/meteoctl/internal/errors"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// SenseHAT reads ambient conditions from a Raspberry Pi Sense HAT.
type SenseHAT struct {
	bus      i2c.Bus
	humidity *HTS221
	pressure *LPS25H
}

// Open initializes the host drivers and opens the named I²C bus ("" for the first one).
func Open(busName string) (*SenseHAT, error) {
	errFactory := errors.New()

	if _, err := host.Init(); err != nil {
		return nil, errFactory.Wrap(ErrHostInit, err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, errFactory.Wrap(ErrBusOpen, err)
	}

	s, err := NewSenseHAT(bus)
	if err != nil {
		bus.Close()
		return nil, err
	}

	return s, nil
}

// NewSenseHAT attaches to the HTS221 and LPS25H on bus.
func NewSenseHAT(bus i2c.Bus) (*SenseHAT, error) {
	humidity, err := NewHTS221(bus)
	if err != nil {
		return nil, err
	}

	pressure, err := NewLPS25H(bus)
	if err != nil {
		return nil, err
	}

	return &SenseHAT{bus: bus, humidity: humidity, pressure: pressure}, nil
}

// ReadTemperature averages the temperatures of both sensors. A zero from either one
// means it has not produced a conversion yet.
func (s *SenseHAT) ReadTemperature() (float64, error) {
	fromHumidity, _, err := s.humidity.Sense()
	if err != nil {
		return 0, err
	}

	fromPressure, err := s.pressure.Temperature()
	if err != nil {
		return 0, err
	}

	if fromHumidity == 0 || fromPressure == 0 {
		return 0, errors.New().WithData(ErrNotReady, struct {
			HTS221 float64
			LPS25H float64
		}{
			HTS221: fromHumidity,
			LPS25H: fromPressure,
		})
	}

	return round1((fromHumidity + fromPressure) / 2), nil
}

func (s *SenseHAT) ReadHumidity() (float64, error) {
	_, humidity, err := s.humidity.Sense()
	if err != nil {
		return 0, err
	}

	return round1(humidity), nil
}

func (s *SenseHAT) Close() error {
	if c, ok := s.bus.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
