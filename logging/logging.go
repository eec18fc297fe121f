package logging

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"strings"
	"sync"
)

// ANSI color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// Level represents log levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var levelNames = map[Level]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel reads a level name such as "debug" or "WARN"
func ParseLevel(s string) (Level, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	if want == "WARNING" {
		want = "WARN"
	}
	for level, name := range levelNames {
		if name == want {
			return level, nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Fields represents structured logging fields
type Fields map[string]any

// merge flattens several field sets into one; later sets win
func merge(base Fields, extra ...Fields) Fields {
	out := make(Fields, len(base))
	maps.Copy(out, base)
	for _, f := range extra {
		maps.Copy(out, f)
	}
	return out
}

// Logger defines the interface that the library expects for logging
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)
	Fatal(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields
	WithFields(fields Fields) Logger

	// WithContext returns a logger carrying any fields stored on ctx
	WithContext(ctx context.Context) Logger

	// SetLevel sets the minimum log level
	SetLevel(level Level)
}

type contextKey struct{}

// ContextWithFields stores fields on ctx for later WithContext calls
func ContextWithFields(ctx context.Context, fields Fields) context.Context {
	return context.WithValue(ctx, contextKey{}, merge(FieldsFromContext(ctx), fields))
}

// FieldsFromContext returns the fields stored by ContextWithFields, if any
func FieldsFromContext(ctx context.Context) Fields {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(contextKey{}).(Fields)
	return fields
}

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewDefaultLogger()
)

// SetGlobalLogger sets the global logger instance. nil silences logging.
func SetGlobalLogger(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if logger == nil {
		globalLogger = &NoOpLogger{}
	} else {
		globalLogger = logger
	}
}

// GetGlobalLogger returns the current global logger
func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// LoggerFromAppLogger creates a library logger from an application logger.
// logrus loggers and entries get a native adapter; anything else exposing
// Debug/Info/Error/WithFields goes through AppLoggerAdapter.
//
// Example integration:
// logging.SetGlobalLogger(logging.LoggerFromAppLogger(logrus.StandardLogger()))
func LoggerFromAppLogger(appLogger any) Logger {
	if appLogger == nil {
		return NewDefaultLogger()
	}
	if logger, ok := appLogger.(Logger); ok {
		return logger
	}
	if l := logrusFrom(appLogger); l != nil {
		return l
	}
	if hasMethod(appLogger, "Debug") && hasMethod(appLogger, "Info") &&
		hasMethod(appLogger, "Error") && hasMethod(appLogger, "WithFields") {
		return &AppLoggerAdapter{appLogger: appLogger}
	}
	return NewDefaultLogger()
}

func hasMethod(obj any, methodName string) bool {
	if obj == nil {
		return false
	}
	_, found := reflect.TypeOf(obj).MethodByName(methodName)
	return found
}

// AppLoggerAdapter adapts a printf-style application logger to Logger
type AppLoggerAdapter struct {
	appLogger any
}

type (
	printfDebugger interface{ Debug(string, ...any) }
	printfInfoer   interface{ Info(string, ...any) }
	printfWarner   interface{ Warn(string, ...any) }
	printfFataler  interface{ Fatal(string, ...any) }
	errorer        interface{ Error(error, ...any) }
)

// format renders msg plus merged fields as a format string and args
func format(msg string, fields []Fields) (string, []any) {
	if len(fields) == 0 {
		return "%s", []any{msg}
	}
	return "%s %+v", []any{msg, merge(nil, fields...)}
}

func (a *AppLoggerAdapter) Debug(msg string, fields ...Fields) {
	if d, ok := a.appLogger.(printfDebugger); ok {
		f, args := format(msg, fields)
		d.Debug(f, args...)
	}
}

func (a *AppLoggerAdapter) Info(msg string, fields ...Fields) {
	if i, ok := a.appLogger.(printfInfoer); ok {
		f, args := format(msg, fields)
		i.Info(f, args...)
	}
}

func (a *AppLoggerAdapter) Warn(msg string, fields ...Fields) {
	if w, ok := a.appLogger.(printfWarner); ok {
		f, args := format(msg, fields)
		w.Warn(f, args...)
		return
	}
	if i, ok := a.appLogger.(printfInfoer); ok {
		f, args := format("WARN: "+msg, fields)
		i.Info(f, args...)
	}
}

func (a *AppLoggerAdapter) Error(err error, msg string, fields ...Fields) {
	if e, ok := a.appLogger.(errorer); ok {
		f, args := format(msg, fields)
		e.Error(err, append([]any{f}, args...)...)
	}
}

// Fatal never exits on its own; the application logger decides that
func (a *AppLoggerAdapter) Fatal(err error, msg string, fields ...Fields) {
	if f, ok := a.appLogger.(printfFataler); ok {
		pattern, args := format(fmt.Sprintf("%s: %v", msg, err), fields)
		f.Fatal(pattern, args...)
		return
	}
	if e, ok := a.appLogger.(errorer); ok {
		f, args := format("FATAL: "+msg, fields)
		e.Error(err, append([]any{f}, args...)...)
	}
}

func (a *AppLoggerAdapter) WithFields(fields Fields) Logger {
	if fielder, ok := a.appLogger.(interface{ WithFields(any) any }); ok {
		return &AppLoggerAdapter{appLogger: fielder.WithFields(fields)}
	}
	return a
}

func (a *AppLoggerAdapter) WithContext(ctx context.Context) Logger {
	if fields := FieldsFromContext(ctx); len(fields) > 0 {
		return a.WithFields(fields)
	}
	return a
}

func (a *AppLoggerAdapter) SetLevel(level Level) {
	if leveler, ok := a.appLogger.(interface{ SetLevel(any) }); ok {
		leveler.SetLevel(level)
	}
}

// Package-level logging functions that use the global logger
func Debug(msg string, fields ...Fields) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...Fields) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Fields) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(err error, msg string, fields ...Fields) {
	GetGlobalLogger().Error(err, msg, fields...)
}

func Fatal(err error, msg string, fields ...Fields) {
	GetGlobalLogger().Fatal(err, msg, fields...)
}

func WithFields(fields Fields) Logger {
	return GetGlobalLogger().WithFields(fields)
}

func WithContext(ctx context.Context) Logger {
	return GetGlobalLogger().WithContext(ctx)
}

func SetLevel(level Level) {
	GetGlobalLogger().SetLevel(level)
}
