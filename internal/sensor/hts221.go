package sensor

import (
	"codeberg.org/mutker/meteoctl/internal/errors"
	"periph.io/x/conn/v3/i2c"
)

// HTS221 registers
const (
	hts221Addr     = 0x5F
	hts221WhoAmI   = 0xBC
	hts221CtrlReg1 = 0x20
	hts221Out      = 0x28
	hts221Calib    = 0x30

	// power on, block data update, 1 Hz
	hts221Ctrl = 0x85
)

// Auto-increment flag for multi-byte reads on ST sensors.
const autoIncrement = 0x80

const regWhoAmI = 0x0F

type hts221Calibration struct {
	h0RH, h1RH   float64
	t0C, t1C     float64
	h0Out, h1Out int16
	t0Out, t1Out int16
}

// HTS221 is the humidity and temperature sensor on the Sense HAT.
type HTS221 struct {
	dev   i2c.Dev
	calib hts221Calibration
}

// NewHTS221 verifies the chip, powers it up and loads its factory calibration.
func NewHTS221(bus i2c.Bus) (*HTS221, error) {
	h := &HTS221{dev: i2c.Dev{Bus: bus, Addr: hts221Addr}}

	if err := checkWhoAmI(&h.dev, hts221WhoAmI); err != nil {
		return nil, err
	}

	if err := h.dev.Tx([]byte{hts221CtrlReg1, hts221Ctrl}, nil); err != nil {
		return nil, errors.New().Wrap(ErrConfigure, err)
	}

	if err := h.loadCalibration(); err != nil {
		return nil, err
	}

	return h, nil
}

func (h *HTS221) loadCalibration() error {
	errFactory := errors.New()

	buf := make([]byte, 16)
	if err := h.dev.Tx([]byte{hts221Calib | autoIncrement}, buf); err != nil {
		return errFactory.Wrap(ErrConfigure, err)
	}

	t0x8 := uint16(buf[2]) | uint16(buf[5]&0x03)<<8
	t1x8 := uint16(buf[3]) | uint16(buf[5]&0x0C)<<6

	c := hts221Calibration{
		h0RH:  float64(buf[0]) / 2,
		h1RH:  float64(buf[1]) / 2,
		t0C:   float64(t0x8) / 8,
		t1C:   float64(t1x8) / 8,
		h0Out: le16(buf[6:8]),
		h1Out: le16(buf[10:12]),
		t0Out: le16(buf[12:14]),
		t1Out: le16(buf[14:16]),
	}

	if c.h0Out == c.h1Out || c.t0Out == c.t1Out {
		return errFactory.WithData(ErrCalibration, c)
	}

	h.calib = c

	return nil
}

// Sense returns the temperature in degrees Celsius and the relative humidity in percent.
func (h *HTS221) Sense() (temperature, humidity float64, err error) {
	buf := make([]byte, 4)
	if err := h.dev.Tx([]byte{hts221Out | autoIncrement}, buf); err != nil {
		return 0, 0, errors.New().Wrap(ErrReadFailed, err)
	}

	hOut := float64(le16(buf[0:2]))
	tOut := float64(le16(buf[2:4]))
	c := h.calib

	humidity = c.h0RH + (c.h1RH-c.h0RH)*(hOut-float64(c.h0Out))/float64(c.h1Out-c.h0Out)
	temperature = c.t0C + (c.t1C-c.t0C)*(tOut-float64(c.t0Out))/float64(c.t1Out-c.t0Out)

	return temperature, clamp(humidity, 0, 100), nil
}

func checkWhoAmI(dev *i2c.Dev, want byte) error {
	errFactory := errors.New()

	id := make([]byte, 1)
	if err := dev.Tx([]byte{regWhoAmI}, id); err != nil {
		return errFactory.Wrap(ErrReadFailed, err)
	}

	if id[0] != want {
		return errFactory.WithData(ErrUnexpectedChip, struct {
			Addr uint16
			Want byte
			Got  byte
		}{
			Addr: dev.Addr,
			Want: want,
			Got:  id[0],
		})
	}

	return nil
}

func le16(b []byte) int16 {
	return int16(uint16(b[0]) | uint16(b[1])<<8)
}

func clamp(value, minValue, maxValue float64) float64 {
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}

	return value
}
