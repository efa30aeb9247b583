package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"codeberg.org/mutker/meteoctl/internal/stats"
)

const namespace = "meteoctl"

type promRecorder struct {
	temperature       prometheus.Gauge
	humidity          prometheus.Gauge
	samplesTotal      prometheus.Counter
	sensorErrorsTotal prometheus.Counter

	windowTemperature prometheus.Gauge
	windowHumidity    prometheus.Gauge
	windowSamples     prometheus.Gauge
	emptyWindowsTotal prometheus.Counter

	notificationsTotal *prometheus.CounterVec

	systemTemperature  prometheus.Gauge
	thermalErrorsTotal prometheus.Counter
	alertsTotal        *prometheus.CounterVec
}

func newPromRecorder(reg prometheus.Registerer) *promRecorder {
	factory := promauto.With(reg)

	return &promRecorder{
		temperature: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "temperature_celsius",
			Help:      "Last ambient temperature sample",
		}),
		humidity: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "humidity_percent",
			Help:      "Last relative humidity sample",
		}),
		samplesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Total number of sensor samples taken",
		}),
		sensorErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sensor_errors_total",
			Help:      "Total number of failed sensor reads",
		}),
		windowTemperature: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "window_temperature_celsius",
			Help:      "Aggregate temperature of the last discretization window",
		}),
		windowHumidity: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "window_humidity_percent",
			Help:      "Aggregate humidity of the last discretization window",
		}),
		windowSamples: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "window_samples",
			Help:      "Number of samples in the last discretization window",
		}),
		emptyWindowsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_windows_total",
			Help:      "Total number of discretization windows without samples",
		}),
		notificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Total number of summary notifications by outcome",
		}, []string{"status"}),
		systemTemperature: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "system_temperature_celsius",
			Help:      "Last system temperature reading",
		}),
		thermalErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "thermal_errors_total",
			Help:      "Total number of failed system temperature reads",
		}),
		alertsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Total number of high temperature alerts by outcome",
		}, []string{"status"}),
	}
}

func (r *promRecorder) ObserveSample(temperature, humidity float64) {
	r.temperature.Set(temperature)
	r.humidity.Set(humidity)
	r.samplesTotal.Inc()
}

func (r *promRecorder) ObserveSensorError() {
	r.sensorErrorsTotal.Inc()
}

func (r *promRecorder) ObserveDiscretization(temperature, humidity float64, samples int) {
	r.windowSamples.Set(float64(samples))
	if stats.IsNoData(temperature) {
		r.emptyWindowsTotal.Inc()
		return
	}

	r.windowTemperature.Set(temperature)
	r.windowHumidity.Set(humidity)
}

func (r *promRecorder) ObserveNotification(sent bool) {
	r.notificationsTotal.With(prometheus.Labels{"status": status(sent)}).Inc()
}

func (r *promRecorder) ObserveSystemTemperature(temperature float64) {
	r.systemTemperature.Set(temperature)
}

func (r *promRecorder) ObserveThermalError() {
	r.thermalErrorsTotal.Inc()
}

func (r *promRecorder) ObserveAlert(sent bool) {
	r.alertsTotal.With(prometheus.Labels{"status": status(sent)}).Inc()
}

func status(ok bool) string {
	if ok {
		return "sent"
	}

	return "failed"
}
