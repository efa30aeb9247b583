package notify

import (
	"context"
	"time"

	"codeberg.org/mutker/meteoctl/internal/errors"
	"codeberg.org/mutker/meteoctl/internal/logger"
	"github.com/wneessen/go-mail"
)

const (
	defaultPort    = 587
	defaultTimeout = 30 * time.Second
)

// Config holds the SMTP relay and envelope settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
	Timeout  time.Duration
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Host == "" {
		return errFactory.WithMessage(ErrInvalidConfig, "mail host is required")
	}
	if c.From == "" {
		return errFactory.WithMessage(ErrInvalidConfig, "mail sender is required")
	}
	if len(c.To) == 0 {
		return errFactory.WithMessage(ErrInvalidConfig, "at least one mail recipient is required")
	}

	return nil
}

// SMTPMailer sends plain text mail through an authenticated STARTTLS relay.
type SMTPMailer struct {
	cfg Config
	log logger.Logger
}

func NewSMTPMailer(cfg Config, log logger.Logger) *SMTPMailer {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	return &SMTPMailer{cfg: cfg, log: log}
}

func (m *SMTPMailer) Send(ctx context.Context, subject, body string) error {
	errFactory := errors.New()

	msg, err := m.message(subject, body)
	if err != nil {
		return err
	}

	client, err := m.client()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errFactory.Wrap(ErrDispatchFailed, err)
	}

	m.log.Debug().
		Str("host", m.cfg.Host).
		Strs("to", m.cfg.To).
		Time("sent_at", time.Now()).
		Msg("Mail sent")

	return nil
}

func (m *SMTPMailer) message(subject, body string) (*mail.Msg, error) {
	errFactory := errors.New()

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, errFactory.Wrap(ErrInvalidAddress, err)
	}
	if err := msg.To(m.cfg.To...); err != nil {
		return nil, errFactory.Wrap(ErrInvalidAddress, err)
	}

	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, body)

	return msg, nil
}

func (m *SMTPMailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(m.cfg.Timeout),
	}

	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return nil, errors.New().Wrap(ErrClientInit, err)
	}

	return client, nil
}
