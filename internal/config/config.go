package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/mutker/meteoctl/internal/errors"
	"codeberg.org/mutker/meteoctl/internal/metrics"
	"codeberg.org/mutker/meteoctl/internal/monitor"
	"codeberg.org/mutker/meteoctl/internal/notify"
	"codeberg.org/mutker/meteoctl/internal/stats"
	"codeberg.org/mutker/meteoctl/internal/thermal"
)

const (
	DefaultMeasuringInterval      = 60
	DefaultNotificationInterval   = 43200
	DefaultDiscretizationInterval = 1800
	DefaultStatistic              = StatisticMedian
	DefaultMailHost               = "smtp.gmail.com"
	DefaultMailPort               = 587
	DefaultMailTimeout            = 30
	DefaultEnvPrefix              = "METEOCTL"
	configName                    = "meteoctl"
)

type Config struct {
	MeasuringInterval      int       `mapstructure:"measuring_interval"`
	NotificationInterval   int       `mapstructure:"notification_interval"`
	DiscretizationInterval int       `mapstructure:"discretization_interval"`
	Statistic              Statistic `mapstructure:"statistic"`
	Notify                 bool      `mapstructure:"notify"`
	Debug                  bool      `mapstructure:"log"`
	PIDFile                string    `mapstructure:"pid_file"`
	I2CBus                 string    `mapstructure:"i2c_bus"`

	Alert   AlertConfig   `mapstructure:"alert"`
	Thermal ThermalConfig `mapstructure:"thermal"`
	Mail    MailConfig    `mapstructure:"mail"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AlertConfig struct {
	Threshold float64 `mapstructure:"threshold"`
	Cooldown  int     `mapstructure:"cooldown"`
}

type ThermalConfig struct {
	Source      string `mapstructure:"source"`
	Path        string `mapstructure:"path"`
	DeviceIndex int    `mapstructure:"device_index"`
}

type MailConfig struct {
	Host     string   `mapstructure:"host"`
	Port     int      `mapstructure:"port"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	From     string   `mapstructure:"from"`
	To       []string `mapstructure:"to"`
	Timeout  int      `mapstructure:"timeout"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// Load merges defaults, the config file, METEOCTL_* environment variables and
// command line flags, in increasing order of precedence, and validates the result.
func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
		}
	}
	if !o.argsSet {
		o.args = os.Args[1:]
	}

	v := viper.New()
	setDefaults(v)

	fs := newFlagSet()
	if err := fs.Parse(o.args); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
	}

	if err := bindFlags(v, fs); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, o, fs); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("measuring_interval", DefaultMeasuringInterval)
	v.SetDefault("notification_interval", DefaultNotificationInterval)
	v.SetDefault("discretization_interval", DefaultDiscretizationInterval)
	v.SetDefault("statistic", string(DefaultStatistic))
	v.SetDefault("notify", false)
	v.SetDefault("log", false)
	v.SetDefault("pid_file", filepath.Join(os.TempDir(), configName+".pid"))
	v.SetDefault("i2c_bus", "")

	v.SetDefault("alert.threshold", monitor.DefaultAlertThreshold)
	v.SetDefault("alert.cooldown", 0)

	v.SetDefault("thermal.source", string(thermal.SourceZone))
	v.SetDefault("thermal.path", thermal.DefaultZonePath)
	v.SetDefault("thermal.device_index", 0)

	v.SetDefault("mail.host", DefaultMailHost)
	v.SetDefault("mail.port", DefaultMailPort)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.to", []string{})
	v.SetDefault("mail.timeout", DefaultMailTimeout)

	defaults := metrics.DefaultConfig()
	v.SetDefault("metrics.enabled", defaults.Enabled)
	v.SetDefault("metrics.listen", defaults.Listen)
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntP("measuring-interval", "m", DefaultMeasuringInterval,
		"Measuring interval in seconds")
	fs.IntP("notification-interval", "n", DefaultNotificationInterval,
		"Notification interval in seconds (notification has to be enabled with --notify)")
	fs.IntP("discretization-interval", "d", DefaultDiscretizationInterval,
		"Discretization of measurements in seconds")
	fs.StringP("statistic", "s", string(DefaultStatistic),
		"Data evaluation; m: median, a: average")
	fs.Bool("notify", false, "Enable email notification")
	fs.Bool("log", false, "Enable debug logging")
	fs.StringP("config", "c", "", "Path to the configuration file")

	return fs
}

var flagKeys = map[string]string{
	"measuring-interval":      "measuring_interval",
	"notification-interval":   "notification_interval",
	"discretization-interval": "discretization_interval",
	"statistic":               "statistic",
	"notify":                  "notify",
	"log":                     "log",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return errors.New().Wrap(errors.ErrBindFlags, err)
		}
	}

	return nil
}

func readConfigFile(v *viper.Viper, o options, fs *pflag.FlagSet) error {
	errFactory := errors.New()

	path := o.configPath
	if flagPath, _ := fs.GetString("config"); flagPath != "" {
		path = flagPath
	}
	if path == "" {
		path = os.Getenv(o.envPrefix + "_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("/etc")
	v.AddConfigPath("/etc/" + configName)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	return nil
}

// Validate checks the interval ordering and the settings each enabled feature needs
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !c.Statistic.IsValid() {
		return errFactory.WithData(errors.ErrInvalidStatistic, c.Statistic)
	}

	if err := c.MonitorSettings().Validate(); err != nil {
		return errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if !thermal.Source(c.Thermal.Source).IsValid() {
		return errFactory.Wrap(errors.ErrInvalidConfig,
			errFactory.WithData(thermal.ErrUnknownSource, c.Thermal.Source))
	}

	if c.Notify {
		if err := c.MailSettings().Validate(); err != nil {
			return errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	if err := c.MetricsSettings().Validate(); err != nil {
		return errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	return nil
}

// MonitorSettings converts the schedule to the scheduler's settings
func (c *Config) MonitorSettings() monitor.Settings {
	kind, _ := stats.ParseKind(string(c.Statistic))

	return monitor.Settings{
		MeasuringInterval:      seconds(c.MeasuringInterval),
		DiscretizationInterval: seconds(c.DiscretizationInterval),
		NotificationInterval:   seconds(c.NotificationInterval),
		Statistic:              kind,
		Notify:                 c.Notify,
		AlertThreshold:         c.Alert.Threshold,
		AlertCooldown:          seconds(c.Alert.Cooldown),
		MailTimeout:            seconds(c.Mail.Timeout),
	}
}

func (c *Config) MailSettings() notify.Config {
	return notify.Config{
		Host:     c.Mail.Host,
		Port:     c.Mail.Port,
		Username: c.Mail.Username,
		Password: c.Mail.Password,
		From:     c.Mail.From,
		To:       c.Mail.To,
		Timeout:  seconds(c.Mail.Timeout),
	}
}

func (c *Config) ThermalSettings() thermal.Config {
	return thermal.Config{
		Source:      thermal.Source(c.Thermal.Source),
		Path:        c.Thermal.Path,
		DeviceIndex: c.Thermal.DeviceIndex,
	}
}

func (c *Config) MetricsSettings() metrics.Config {
	return metrics.Config{
		Enabled: c.Metrics.Enabled,
		Listen:  c.Metrics.Listen,
	}
}

// Usage describes the command line flags
func Usage() string {
	return fmt.Sprintf("Usage of %s:\n%s", configName, newFlagSet().FlagUsages())
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
