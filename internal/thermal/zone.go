package thermal

import (
	"os"
	"strconv"
	"strings"

	"codeberg.org/mutker/meteoctl/internal/errors"
)

// DefaultZonePath is the first thermal zone on Linux, usually the SoC.
const DefaultZonePath = "/sys/class/thermal/thermal_zone0/temp"

const milliDegrees = 1000

// Zone reads a sysfs thermal zone, which reports millidegrees Celsius.
type Zone struct {
	path string
}

func NewZone(path string) *Zone {
	if path == "" {
		path = DefaultZonePath
	}

	return &Zone{path: path}
}

func (z *Zone) Read() (float64, error) {
	errFactory := errors.New()

	raw, err := os.ReadFile(z.path)
	if err != nil {
		return 0, errFactory.Wrap(ErrReadFailed, err)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return 0, errFactory.WithData(ErrParseFailed, struct {
			Path  string
			Raw   string
			Error string
		}{
			Path:  z.path,
			Raw:   string(raw),
			Error: err.Error(),
		})
	}

	return value / milliDegrees, nil
}

func (*Zone) Close() error {
	return nil
}
