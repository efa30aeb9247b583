// Package thermal reads the temperature of the host running the monitor.
package thermal

import "codeberg.org/mutker/meteoctl/internal/errors"

// Config selects and parameterizes the Reader.
type Config struct {
	Source      Source
	Path        string
	DeviceIndex int
}

// Open returns the Reader configured by cfg.
func Open(cfg Config) (Reader, error) {
	switch cfg.Source {
	case SourceZone, "":
		return NewZone(cfg.Path), nil
	case SourceNVML:
		r, err := OpenNVML(cfg.DeviceIndex)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, errors.New().WithData(ErrUnknownSource, cfg.Source)
	}
}
