package log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	cerrors "github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/gdeval/pkg/errors"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
	// ErrDetailAttrKey holds the structured fields of typed errors that
	// implement zerolog.LogObjectMarshaler.
	ErrDetailAttrKey = "error_detail"
)

var (
	providerMu sync.RWMutex
	provider   LoggerProvider = NewZerologProvider(os.Stderr, LevelInfo)
)

func init() {
	RouteWarnings()
}

// RouteWarnings sends errors.Warn output to the active provider. It is
// installed on package initialisation.
func RouteWarnings() {
	errors.SetZerologWarnFunc(logWarning)
}

// GetLogger returns the default logger of the active provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLogger()
}

// GetLoggerWithName returns a logger tagged with the given component name.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLoggerWithName(name)
}

// SetLevel sets the minimum level of the active provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	provider.SetLevel(level)
}

// SetProvider replaces the active provider and returns the previous one.
// Tests use it to capture records with a TestLoggerProvider.
func SetProvider(p LoggerProvider) LoggerProvider {
	providerMu.Lock()
	defer providerMu.Unlock()
	prev := provider
	provider = p
	return prev
}

// SetOutput installs a JSON zerolog provider writing to w at level.
func SetOutput(w io.Writer, level Level) {
	SetProvider(NewZerologProvider(w, level))
}

// SetupLogger installs a JSON zerolog provider writing to stdout at the
// given level ("debug", "info", "warn" or "error").
func SetupLogger(loglevel string) error {
	level, err := ParseLevel(loglevel)
	if err != nil {
		return err
	}
	SetOutput(os.Stdout, level)
	return nil
}

// ParseLevel converts a level name to a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.NewValidationError("log.level", "unknown log level", level)
	}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ZerologProvider creates zerolog-backed loggers sharing one writer.
type ZerologProvider struct {
	mu    sync.RWMutex
	base  zerolog.Logger
	level Level
}

// NewZerologProvider creates a provider that writes JSON lines to w.
func NewZerologProvider(w io.Writer, level Level) *ZerologProvider {
	return &ZerologProvider{
		base:  zerolog.New(w).With().Timestamp().Logger(),
		level: level,
	}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{l: p.base.Level(toZerologLevel(p.level))}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel. Loggers handed out earlier
// keep their level.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

// NewZerologLogger returns a standalone zerolog-backed Logger.
func NewZerologLogger(w io.Writer, level Level) Logger {
	return NewZerologProvider(w, level).GetLogger()
}

type zerologLogger struct {
	l zerolog.Logger
}

func (z *zerologLogger) Debug(msg string, fields ...any) {
	z.emit(z.l.Debug(), msg, fields)
}

func (z *zerologLogger) Info(msg string, fields ...any) {
	z.emit(z.l.Info(), msg, fields)
}

func (z *zerologLogger) Warn(msg string, fields ...any) {
	z.emit(z.l.Warn(), msg, fields)
}

func (z *zerologLogger) Error(msg string, fields ...any) {
	ev := z.l.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			ev = withError(ev, err)
			fields = fields[1:]
		}
	}
	z.emit(ev, msg, fields)
}

func (z *zerologLogger) With(fields ...any) Logger {
	return &zerologLogger{l: z.l.With().Fields(evenFields(fields)).Logger()}
}

func (z *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= z.l.GetLevel()
}

func (z *zerologLogger) emit(ev *zerolog.Event, msg string, fields []any) {
	if ev == nil {
		return
	}
	ev.Fields(evenFields(fields)).Msg(msg)
}

// evenFields drops a trailing key without a value.
func evenFields(fields []any) []any {
	if len(fields)%2 == 1 {
		return fields[:len(fields)-1]
	}
	return fields
}

// withError attaches err, its stack trace and, for typed errors, their
// structured fields.
func withError(ev *zerolog.Event, err error) *zerolog.Event {
	ev = ev.Err(err)
	if st := extractStacktrace(err); st != "" {
		ev = ev.Str(StacktraceAttrKey, st)
	}
	var m zerolog.LogObjectMarshaler
	if cerrors.As(err, &m) {
		ev = ev.Object(ErrDetailAttrKey, m)
	}
	return ev
}

// extractStacktrace returns the first stack recorded by cockroachdb/errors
// along the error chain.
func extractStacktrace(err error) string {
	for _, payload := range cerrors.GetAllSafeDetails(err) {
		if len(payload.SafeDetails) > 0 && payload.SafeDetails[0] != "" {
			return payload.SafeDetails[0]
		}
	}
	return ""
}

// logWarning routes errors.Warn through the active provider. Typed warnings
// are rendered as objects by zerolog.
func logWarning(w error) {
	GetLoggerWithName("warnings").Warn(w.Error(), "warning", w)
}
