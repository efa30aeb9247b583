package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"codeberg.org/mutker/meteoctl/internal/errors"
	"codeberg.org/mutker/meteoctl/internal/logger"
)

// Service bundles the recorder with the registry the endpoint serves.
type Service struct {
	Recorder
	registry *prometheus.Registry
	cfg      Config
}

// No-op implementation
type noopRecorder struct{}

// NewService returns a prometheus backed service, or a no-op recorder when metrics are disabled.
func NewService(cfg Config, log logger.Logger) (*Service, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		log.Debug().Msg("Metrics disabled, using no-op recorder")
		return &Service{Recorder: noopRecorder{}, cfg: cfg}, nil
	}

	reg := prometheus.NewRegistry()

	log.Debug().
		Str("listen", cfg.Listen).
		Msg("Metrics service initialized")

	return &Service{
		Recorder: newPromRecorder(reg),
		registry: reg,
		cfg:      cfg,
	}, nil
}

// Enabled reports whether the service has an endpoint to serve.
func (s *Service) Enabled() bool {
	return s.registry != nil
}

// Noop returns a Recorder that drops everything.
func Noop() Recorder {
	return noopRecorder{}
}

func (noopRecorder) ObserveSample(float64, float64)              {}
func (noopRecorder) ObserveSensorError()                         {}
func (noopRecorder) ObserveDiscretization(float64, float64, int) {}
func (noopRecorder) ObserveNotification(bool)                    {}
func (noopRecorder) ObserveSystemTemperature(float64)            {}
func (noopRecorder) ObserveThermalError()                        {}
func (noopRecorder) ObserveAlert(bool)                           {}
