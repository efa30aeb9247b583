package metrics

// Recorder receives the monitor's observable events.
type Recorder interface {
	ObserveSample(temperature, humidity float64)
	ObserveSensorError()
	ObserveDiscretization(temperature, humidity float64, samples int)
	ObserveNotification(sent bool)
	ObserveSystemTemperature(temperature float64)
	ObserveThermalError()
	ObserveAlert(sent bool)
}
