package logger

import (
	"io"
	"os"
	"syscall"
	"time"

	"codeberg.org/mutker/meteoctl/internal/errors"
	"github.com/rs/zerolog"
)

var log zerolog.Logger = zerolog.Nop()

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// zerologLogger adapts a zerolog.Logger to the Logger interface
type zerologLogger struct {
	zl zerolog.Logger
}

// Init initializes the global logger. Debug logging is enabled by the --log flag;
// otherwise only info and above are written.
func Init(debug, isService bool) {
	log = newZerolog(os.Stdout, isService)

	SetLogLevel(InfoLevel)
	if debug {
		SetLogLevel(DebugLevel)
	}
}

// New returns a Logger writing console output to out at the given level
func New(out io.Writer, level LogLevel) Logger {
	return &zerologLogger{zl: newZerolog(out, false).Level(zerolog.Level(level))}
}

// Nop returns a Logger that discards everything
func Nop() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

// Get returns the global logger as a Logger
func Get() Logger {
	return &zerologLogger{zl: log}
}

func newZerolog(out io.Writer, isService bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	// journald stamps lines itself
	if isService {
		output.TimeFormat = ""
		output.FormatTimestamp = func(_ interface{}) string {
			return ""
		}
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// IsService checks if the application is running as a service
func IsService() bool {
	if _, err := os.Stdin.Stat(); err != nil {
		return true
	}
	if os.Getenv("SERVICE_NAME") != "" || os.Getenv("INVOCATION_ID") != "" {
		return true
	}
	if os.Getppid() == 1 {
		return true
	}

	return syscall.Getpgrp() == syscall.Getpid()
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// Fatal logs a fatal message and exits the program
func Fatal() *LogEvent {
	return &LogEvent{log.Fatal()}
}

// ErrorWithCode logs an error message with a specific error code
func ErrorWithCode(err errors.Error) *LogEvent {
	return withCode(log.Error(), err)
}

// FatalWithCode logs a fatal message with a specific error code and exits the program
func FatalWithCode(err errors.Error) *LogEvent {
	return withCode(log.Fatal(), err)
}

func withCode(e *zerolog.Event, err errors.Error) *LogEvent {
	return &LogEvent{e.
		Str("error_code", string(err.Code())).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap())}
}

func (l *zerologLogger) Debug() *LogEvent {
	return &LogEvent{l.zl.Debug()}
}

func (l *zerologLogger) Info() *LogEvent {
	return &LogEvent{l.zl.Info()}
}

func (l *zerologLogger) Warn() *LogEvent {
	return &LogEvent{l.zl.Warn()}
}

func (l *zerologLogger) Error() *LogEvent {
	return &LogEvent{l.zl.Error()}
}

func (l *zerologLogger) ErrorWithCode(err errors.Error) *LogEvent {
	return withCode(l.zl.Error(), err)
}
