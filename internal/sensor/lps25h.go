package sensor

import (
	"codeberg.org/mutker/meteoctl/internal/errors"
	"periph.io/x/conn/v3/i2c"
)

// LPS25H registers
const (
	lps25hAddr     = 0x5C
	lps25hWhoAmI   = 0xBD
	lps25hCtrlReg1 = 0x20
	lps25hTempOut  = 0x2B

	// power on, 1 Hz
	lps25hCtrl = 0x90
)

// LPS25H is the pressure sensor on the Sense HAT. Only its die temperature is used.
type LPS25H struct {
	dev i2c.Dev
}

func NewLPS25H(bus i2c.Bus) (*LPS25H, error) {
	p := &LPS25H{dev: i2c.Dev{Bus: bus, Addr: lps25hAddr}}

	if err := checkWhoAmI(&p.dev, lps25hWhoAmI); err != nil {
		return nil, err
	}

	if err := p.dev.Tx([]byte{lps25hCtrlReg1, lps25hCtrl}, nil); err != nil {
		return nil, errors.New().Wrap(ErrConfigure, err)
	}

	return p, nil
}

// Temperature returns the sensor temperature in degrees Celsius.
func (p *LPS25H) Temperature() (float64, error) {
	buf := make([]byte, 2)
	if err := p.dev.Tx([]byte{lps25hTempOut | autoIncrement}, buf); err != nil {
		return 0, errors.New().Wrap(ErrReadFailed, err)
	}

	return 42.5 + float64(le16(buf))/480, nil
}
