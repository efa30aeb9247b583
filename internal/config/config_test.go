package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/meteoctl/internal/config"
	"codeberg.org/mutker/meteoctl/internal/errors"
	"codeberg.org/mutker/meteoctl/internal/stats"
	"codeberg.org/mutker/meteoctl/internal/thermal"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "meteoctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("METEOCTL_CONFIG", "")

	cfg, err := config.Load(config.WithArgs(nil))
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, 60, cfg.MeasuringInterval, "Expected default MeasuringInterval 60")
	assert.Equal(t, 43200, cfg.NotificationInterval, "Expected default NotificationInterval 43200")
	assert.Equal(t, 1800, cfg.DiscretizationInterval, "Expected default DiscretizationInterval 1800")
	assert.Equal(t, config.StatisticMedian, cfg.Statistic)
	assert.False(t, cfg.Notify, "Expected default Notify false")
	assert.False(t, cfg.Debug, "Expected default Debug false")
	assert.InDelta(t, 60.0, cfg.Alert.Threshold, 1e-9)
	assert.Equal(t, string(thermal.SourceZone), cfg.Thermal.Source)
	assert.Equal(t, thermal.DefaultZonePath, cfg.Thermal.Path)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := config.Load(config.WithArgs([]string{
		"-m", "30", "-n", "3600", "-d", "600", "-s", "a", "--log",
	}))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.MeasuringInterval)
	assert.Equal(t, 3600, cfg.NotificationInterval)
	assert.Equal(t, 600, cfg.DiscretizationInterval)
	assert.Equal(t, config.StatisticAverage, cfg.Statistic)
	assert.True(t, cfg.Debug)

	s := cfg.MonitorSettings()
	assert.Equal(t, 30*time.Second, s.MeasuringInterval)
	assert.Equal(t, time.Hour, s.NotificationInterval)
	assert.Equal(t, 10*time.Minute, s.DiscretizationInterval)
	assert.Equal(t, stats.Mean, s.Statistic)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
measuring_interval = 120
notification_interval = 7200
discretization_interval = 900
statistic = "a"
notify = true

[alert]
threshold = 70.5
cooldown = 600

[mail]
host = "mail.example.org"
port = 2525
username = "pi"
from = "pi@example.org"
to = ["owner@example.org", "backup@example.org"]

[metrics]
enabled = true
listen = ":9200"
`)

	cfg, err := config.Load(config.WithArgs(nil), config.WithConfigFile(path))
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.MeasuringInterval)
	assert.Equal(t, 7200, cfg.NotificationInterval)
	assert.Equal(t, 900, cfg.DiscretizationInterval)
	assert.Equal(t, config.StatisticAverage, cfg.Statistic)
	assert.True(t, cfg.Notify)
	assert.InDelta(t, 70.5, cfg.Alert.Threshold, 1e-9)
	assert.Equal(t, 10*time.Minute, cfg.MonitorSettings().AlertCooldown)
	assert.Equal(t, "mail.example.org", cfg.Mail.Host)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.Equal(t, []string{"owner@example.org", "backup@example.org"}, cfg.MailSettings().To)
	assert.True(t, cfg.MetricsSettings().Enabled)
	assert.Equal(t, ":9200", cfg.MetricsSettings().Listen)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
measuring_interval = 120
statistic = "a"
`)

	cfg, err := config.Load(config.WithArgs([]string{"-m", "10", "--config", path}))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MeasuringInterval)
	assert.Equal(t, config.StatisticAverage, cfg.Statistic)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("METEOCTL_MAIL_PASSWORD", "hunter2")
	t.Setenv("METEOCTL_DISCRETIZATION_INTERVAL", "300")

	cfg, err := config.Load(config.WithArgs(nil))
	require.NoError(t, err)

	assert.Equal(t, "hunter2", cfg.MailSettings().Password)
	assert.Equal(t, 300, cfg.DiscretizationInterval)
}

func TestEnvPrefix(t *testing.T) {
	t.Setenv("WEATHER_MEASURING_INTERVAL", "15")

	cfg, err := config.Load(config.WithArgs(nil), config.WithEnvPrefix("WEATHER"))
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.MeasuringInterval)
}

func TestIntervalOrdering(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"notification below measuring", []string{"-m", "120", "-n", "60", "-d", "0"}},
		{"notification below discretization", []string{"-n", "600", "-d", "1800"}},
		{"zero measuring", []string{"-m", "0"}},
		{"negative discretization", []string{"-d", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(config.WithArgs(tt.args))
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrInvalidConfig))
			assert.True(t, errors.HasCode(err, errors.ErrInvalidInterval))
		})
	}
}

func TestInvalidStatistic(t *testing.T) {
	_, err := config.Load(config.WithArgs([]string{"-s", "x"}))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidStatistic))
}

func TestNotifyRequiresMailSettings(t *testing.T) {
	_, err := config.Load(config.WithArgs([]string{"--notify"}))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidConfig))

	t.Setenv("METEOCTL_MAIL_FROM", "pi@example.org")
	t.Setenv("METEOCTL_MAIL_TO", "owner@example.org")

	cfg, err := config.Load(config.WithArgs([]string{"--notify"}))
	require.NoError(t, err)
	assert.True(t, cfg.MonitorSettings().Notify)
	assert.Equal(t, []string{"owner@example.org"}, cfg.MailSettings().To)
}

func TestUnknownThermalSource(t *testing.T) {
	path := writeConfig(t, `
[thermal]
source = "thermocouple"
`)

	_, err := config.Load(config.WithArgs(nil), config.WithConfigFile(path))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, thermal.ErrUnknownSource))
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	path := writeConfig(t, `
This is not a valid TOML file
`)

	_, err := config.Load(config.WithArgs(nil), config.WithConfigFile(path))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestMissingExplicitConfigFile(t *testing.T) {
	_, err := config.Load(config.WithArgs(nil),
		config.WithConfigFile(filepath.Join(t.TempDir(), "missing.toml")))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestHelp(t *testing.T) {
	_, err := config.Load(config.WithArgs([]string{"--help"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestUsage(t *testing.T) {
	usage := config.Usage()

	for _, flag := range []string{"-m", "-n", "-d", "-s", "--notify", "--log"} {
		assert.Contains(t, usage, flag)
	}
}
