package sensor

// Sensor reads the ambient conditions. Implementations may fail on any call;
// callers treat a failure as a skipped sample.
type Sensor interface {
	// ReadTemperature returns the ambient temperature in degrees Celsius
	ReadTemperature() (float64, error)

	// ReadHumidity returns the relative humidity in percent
	ReadHumidity() (float64, error)

	// Close releases the underlying bus
	Close() error
}
