package monitor

import (
	"time"

	"codeberg.org/mutker/meteoctl/internal/errors"
	"codeberg.org/mutker/meteoctl/internal/stats"
)

// DefaultAlertThreshold is the system temperature above which an alert is mailed.
const DefaultAlertThreshold = 60.0

// Settings is the immutable schedule the loop runs on.
type Settings struct {
	MeasuringInterval      time.Duration
	DiscretizationInterval time.Duration
	NotificationInterval   time.Duration
	Statistic              stats.Kind
	Notify                 bool

	AlertThreshold float64
	// AlertCooldown is the minimum time between two alerts; zero alerts on every tick.
	AlertCooldown time.Duration
	MailTimeout   time.Duration
}

// Validate enforces N ≥ M, N ≥ D ≥ 0 and M > 0.
func (s Settings) Validate() error {
	errFactory := errors.New()

	switch {
	case s.MeasuringInterval <= 0:
		return errFactory.WithMessage(ErrInvalidInterval, "measuring interval must be positive")
	case s.DiscretizationInterval < 0:
		return errFactory.WithMessage(ErrInvalidInterval, "discretization interval must not be negative")
	case s.NotificationInterval < s.MeasuringInterval:
		return errFactory.WithMessage(ErrInvalidInterval, "notification interval has to be larger than measuring interval")
	case s.NotificationInterval < s.DiscretizationInterval:
		return errFactory.WithMessage(ErrInvalidInterval, "notification interval has to be larger than discretization interval")
	case s.AlertCooldown < 0:
		return errFactory.WithMessage(ErrInvalidInterval, "alert cooldown must not be negative")
	}

	return nil
}

// SleepDuration returns how long to suspend after a tick that took elapsed, so
// that ticks stay on a fixed period. The result lies in (0, interval]; when the
// work overran one or more periods the next tick lands on the following boundary.
// Work that ends exactly on a boundary (elapsed a multiple of interval, zero
// included) waits one full period rather than ticking again immediately.
func SleepDuration(elapsed, interval time.Duration) time.Duration {
	if interval <= 0 {
		return 0
	}
	if elapsed <= 0 {
		return interval
	}

	return interval - elapsed%interval
}
