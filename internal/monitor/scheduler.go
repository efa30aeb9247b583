// Package monitor runs the sampling, discretization and notification loop.
package monitor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"codeberg.org/mutker/meteoctl/internal/clock"
	"codeberg.org/mutker/meteoctl/internal/errors"
	"codeberg.org/mutker/meteoctl/internal/logger"
	"codeberg.org/mutker/meteoctl/internal/metrics"
	"codeberg.org/mutker/meteoctl/internal/notify"
	"codeberg.org/mutker/meteoctl/internal/sensor"
	"codeberg.org/mutker/meteoctl/internal/stats"
	"codeberg.org/mutker/meteoctl/internal/thermal"
	"codeberg.org/mutker/meteoctl/internal/window"
)

// Anchors are the wall-clock marks the schedule is measured from.
type Anchors struct {
	Tick           time.Time
	Discretization time.Time
	Notification   time.Time
}

// Scheduler owns the sample buffers and drives one tick at a time.
type Scheduler struct {
	settings Settings
	sensor   sensor.Sensor
	thermal  thermal.Reader
	mailer   notify.Mailer

	clock   clock.Clock
	log     logger.Logger
	metrics metrics.Recorder
	alerts  *rate.Limiter

	temperature       window.SampleWindow
	humidity          window.SampleWindow
	temperatureSeries window.Series
	humiditySeries    window.Series

	anchors Anchors
}

type Option func(*Scheduler)

func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

func WithMetrics(r metrics.Recorder) Option {
	return func(s *Scheduler) { s.metrics = r }
}

// New validates settings and returns a Scheduler whose windows start now.
// th may be nil to disable the system temperature check.
func New(settings Settings, sn sensor.Sensor, th thermal.Reader, m notify.Mailer, opts ...Option) (*Scheduler, error) {
	errFactory := errors.New()

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if sn == nil {
		return nil, errFactory.New(ErrMissingSensor)
	}
	if m == nil {
		return nil, errFactory.New(ErrMissingMailer)
	}

	s := &Scheduler{
		settings: settings,
		sensor:   sn,
		thermal:  th,
		mailer:   m,
		clock:    clock.Wall,
		log:      logger.Nop(),
		metrics:  metrics.Noop(),
		alerts:   newAlertLimiter(settings.AlertCooldown),
	}
	for _, opt := range opts {
		opt(s)
	}

	now := s.clock.Now()
	s.anchors = Anchors{Tick: now, Discretization: now, Notification: now}

	return s, nil
}

func newAlertLimiter(cooldown time.Duration) *rate.Limiter {
	if cooldown <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}

	return rate.NewLimiter(rate.Every(cooldown), 1)
}

// Anchors returns the current schedule marks.
func (s *Scheduler) Anchors() Anchors {
	return s.anchors
}

// Run ticks until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.Info().
		Dur("measuring_interval", s.settings.MeasuringInterval).
		Dur("discretization_interval", s.settings.DiscretizationInterval).
		Dur("notification_interval", s.settings.NotificationInterval).
		Str("statistic", s.settings.Statistic.String()).
		Bool("notify", s.settings.Notify).
		Msg("Monitoring started")

	for {
		if ctx.Err() != nil {
			s.log.Info().Msg("Monitoring stopped")
			return nil
		}

		sleep := s.Step(ctx)

		select {
		case <-ctx.Done():
			s.log.Info().Msg("Monitoring stopped")
			return nil
		case <-s.clock.After(sleep):
		}
	}
}

// Step runs one tick and returns how long to sleep before the next one.
// Discretization is always evaluated before notification, so a window that
// closes on the same tick feeds the summary.
func (s *Scheduler) Step(ctx context.Context) time.Duration {
	tick := s.clock.Now()
	s.anchors.Tick = tick

	s.sample(tick)

	// Boundaries are measured from and reset to the tick time, so a slow read
	// on one tick does not delay the next window by a whole period.
	if tick.Sub(s.anchors.Discretization) >= s.settings.DiscretizationInterval {
		s.discretize(tick)
	}

	if tick.Sub(s.anchors.Notification) >= s.settings.NotificationInterval {
		s.summarize(ctx, tick)
	}

	s.checkSystemTemperature(ctx)

	return SleepDuration(s.clock.Now().Sub(tick), s.settings.MeasuringInterval)
}

// sample reads both values and records them together or not at all.
func (s *Scheduler) sample(at time.Time) {
	temperature, err := s.sensor.ReadTemperature()
	if err != nil {
		s.sensorFailed(err)
		return
	}

	humidity, err := s.sensor.ReadHumidity()
	if err != nil {
		s.sensorFailed(err)
		return
	}

	s.temperature.Add(at, temperature)
	s.humidity.Add(at, humidity)
	s.metrics.ObserveSample(temperature, humidity)

	s.log.Debug().
		Float64("temperature", temperature).
		Float64("humidity", humidity).
		Msg("Sample")
}

func (s *Scheduler) sensorFailed(err error) {
	s.metrics.ObserveSensorError()
	s.log.Warn().
		Str("error_code", string(errors.ErrSensor)).
		Err(err).
		Msg("Sensor read failed, skipping sample")
}

// discretize folds the sample windows into one value each. An empty window
// records NoData so both series stay the same length.
func (s *Scheduler) discretize(tick time.Time) {
	temperatures := s.temperature.DrainValues()
	humidities := s.humidity.DrainValues()

	temperature := stats.AggregateOr(temperatures, s.settings.Statistic)
	humidity := stats.AggregateOr(humidities, s.settings.Statistic)

	s.temperatureSeries.Append(temperature)
	s.humiditySeries.Append(humidity)
	s.anchors.Discretization = tick

	s.metrics.ObserveDiscretization(temperature, humidity, len(temperatures))

	if len(temperatures) == 0 {
		s.log.Warn().Msg("No samples in discretization window")
		return
	}

	s.log.Debug().
		Int("samples", len(temperatures)).
		Float64("temperature", temperature).
		Float64("humidity", humidity).
		Msg("Window discretized")
}

// summarize reduces the discretized series and mails the result. The series are
// drained before dispatch; a failed dispatch loses that interval.
func (s *Scheduler) summarize(ctx context.Context, tick time.Time) {
	temperatures := stats.WithoutNoData(s.temperatureSeries.Drain())
	humidities := stats.WithoutNoData(s.humiditySeries.Drain())
	s.anchors.Notification = tick

	temperature := stats.AggregateOr(temperatures, s.settings.Statistic)
	humidity := stats.AggregateOr(humidities, s.settings.Statistic)

	if !s.settings.Notify {
		s.log.Info().
			Int("windows", len(temperatures)).
			Float64("temperature", temperature).
			Float64("humidity", humidity).
			Msg("Summary (notifications disabled)")
		return
	}

	body := notify.Compose(s.settings.Statistic, s.settings.NotificationInterval, temperature, humidity)
	err := s.dispatch(ctx, notify.Subject(s.settings.Statistic, s.settings.NotificationInterval), body)
	s.metrics.ObserveNotification(err == nil)
}

func (s *Scheduler) checkSystemTemperature(ctx context.Context) {
	if s.thermal == nil {
		return
	}

	temperature, err := s.thermal.Read()
	if err != nil {
		s.metrics.ObserveThermalError()
		s.log.Warn().
			Str("error_code", string(errors.ErrThermal)).
			Err(err).
			Msg("System temperature read failed")
		return
	}

	s.metrics.ObserveSystemTemperature(temperature)
	s.log.Debug().Float64("cpu_temperature", temperature).Msg("System temperature")

	if temperature <= s.settings.AlertThreshold {
		return
	}

	if !s.alerts.AllowN(s.clock.Now(), 1) {
		s.log.Debug().
			Float64("cpu_temperature", temperature).
			Msg("Alert suppressed by cooldown")
		return
	}

	err = s.dispatch(ctx, notify.AlertSubject, notify.ComposeAlert(temperature))
	s.metrics.ObserveAlert(err == nil)
}

func (s *Scheduler) dispatch(ctx context.Context, subject, body string) error {
	id := uuid.NewString()

	if s.settings.MailTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.MailTimeout)
		defer cancel()
	}

	if err := s.mailer.Send(ctx, subject, body); err != nil {
		var appErr errors.Error
		if !errors.As(err, &appErr) {
			appErr = errors.New().Wrap(errors.ErrMail, err)
		}
		s.log.ErrorWithCode(appErr).
			Str("dispatch_id", id).
			Str("subject", subject).
			Msg("Mail dispatch failed")
		return err
	}

	s.log.Info().
		Str("dispatch_id", id).
		Str("subject", subject).
		Msg("Mail dispatched")

	return nil
}
