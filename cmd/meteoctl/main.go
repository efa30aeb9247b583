package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"codeberg.org/mutker/meteoctl/internal/config"
	"codeberg.org/mutker/meteoctl/internal/errors"
	"codeberg.org/mutker/meteoctl/internal/logger"
	"codeberg.org/mutker/meteoctl/internal/metrics"
	"codeberg.org/mutker/meteoctl/internal/monitor"
	"codeberg.org/mutker/meteoctl/internal/notify"
	"codeberg.org/mutker/meteoctl/internal/pid"
	"codeberg.org/mutker/meteoctl/internal/sensor"
	"codeberg.org/mutker/meteoctl/internal/thermal"
)

const exitUsage = 2

func main() {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(os.Stdout, config.Usage())
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "meteoctl: %v\n\n%s", err, config.Usage())
		os.Exit(exitUsage)
	}

	logger.Init(cfg.Debug, logger.IsService())
	logger.Debug().Msg("Config loaded")

	if err := run(cfg); err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.FatalWithCode(appErr).Msg("meteoctl failed")
		}
		logger.Fatal().Err(err).Msg("meteoctl failed")
	}
}

func run(cfg *config.Config) error {
	errFactory := errors.New()
	log := logger.Get()

	if err := pid.Write(cfg.PIDFile); err != nil {
		return err
	}
	defer func() {
		if err := pid.Remove(cfg.PIDFile); err != nil {
			log.Error().Err(err).Msg("failed to remove PID file")
		}
	}()

	hat, err := sensor.Open(cfg.I2CBus)
	if err != nil {
		return errFactory.Wrap(errors.ErrInitApp, err)
	}
	defer hat.Close()

	reader, err := thermal.Open(cfg.ThermalSettings())
	if err != nil {
		log.Warn().Err(err).Msg("System temperature check disabled")
	} else {
		defer reader.Close()
	}

	metricsSvc, err := metrics.NewService(cfg.MetricsSettings(), log)
	if err != nil {
		return errFactory.Wrap(errors.ErrInitApp, err)
	}

	mailer := notify.NewSMTPMailer(cfg.MailSettings(), log)

	scheduler, err := monitor.New(cfg.MonitorSettings(), hat, reader, mailer,
		monitor.WithLogger(log),
		monitor.WithMetrics(metricsSvc),
	)
	if err != nil {
		return errFactory.Wrap(errors.ErrInitApp, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if srv := metrics.NewServer(metricsSvc, log); srv != nil {
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.Error().Err(err).Msg("metrics endpoint stopped")
			}
		}()
	}

	if err := scheduler.Run(ctx); err != nil {
		return errFactory.Wrap(errors.ErrMainLoop, err)
	}

	logger.Info().Msg("Exiting...")

	return nil
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
