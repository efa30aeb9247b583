package metrics

import "codeberg.org/mutker/meteoctl/internal/errors"

const defaultListen = "127.0.0.1:9127"

type Config struct {
	Enabled bool
	Listen  string
}

func DefaultConfig() Config {
	return Config{
		Listen:  defaultListen,
		Enabled: false, // Disabled by default
	}
}

func (c Config) Validate() error {
	// Only validate Listen if metrics is enabled
	if c.Enabled && c.Listen == "" {
		return errors.New().New(ErrInvalidListen)
	}
	return nil
}
