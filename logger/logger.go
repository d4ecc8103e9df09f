package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging surface used across the module.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Format selects how log lines are rendered.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

type option struct {
	Out    io.Writer
	Level  zerolog.Level
	Format Format
}

type Option func(*option)

// Output sets the destination of log lines. Defaults to os.Stderr.
func Output(w io.Writer) Option {
	return func(o *option) {
		o.Out = w
	}
}

// Level sets the minimum level. Defaults to zerolog.InfoLevel.
func Level(level zerolog.Level) Option {
	return func(o *option) {
		o.Level = level
	}
}

// WithFormat sets the output format. Defaults to FormatConsole.
func WithFormat(format Format) Option {
	return func(o *option) {
		o.Format = format
	}
}

func newOption(opts ...Option) *option {
	o := &option{Out: os.Stderr, Level: zerolog.InfoLevel, Format: FormatConsole}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// New returns a Logger for the given component. Every line carries a component field.
func New(component string, opts ...Option) *ZerologLogger {
	o := newOption(opts...)
	out := o.Out
	if o.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: o.Out, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).Level(o.Level).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

// With returns a child logger for another component sharing the same sink and level.
func (l *ZerologLogger) With(component string) *ZerologLogger {
	return &ZerologLogger{log: l.log.With().Str("component", component).Logger()}
}
