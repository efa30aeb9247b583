package config

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath string
	envPrefix  string
	args       []string
	argsSet    bool
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "METEOCTL"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// WithArgs parses args instead of os.Args[1:]
func WithArgs(args []string) Option {
	return func(o *options) error {
		o.args = args
		o.argsSet = true
		return nil
	}
}

// Statistic represents the configured reduction, as given on the command line
type Statistic string

const (
	StatisticMedian  Statistic = "m"
	StatisticAverage Statistic = "a"
)

// IsValid returns whether the statistic is valid
func (s Statistic) IsValid() bool {
	switch s {
	case StatisticMedian, StatisticAverage:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (s Statistic) String() string {
	return string(s)
}
