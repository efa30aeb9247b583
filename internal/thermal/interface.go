package thermal

// Reader reports the host's own temperature in degrees Celsius.
type Reader interface {
	Read() (float64, error)
	Close() error
}

// Source names a Reader implementation in configuration.
type Source string

const (
	SourceZone Source = "zone"
	SourceNVML Source = "nvml"
)

// IsValid returns whether the source is known
func (s Source) IsValid() bool {
	switch s {
	case SourceZone, SourceNVML:
		return true
	default:
		return false
	}
}
