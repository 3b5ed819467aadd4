// Package log provides the application's leveled logger: timestamped line
// output by default, optional JSON, and key=value fields via With.
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured logging key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F constructs a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput directs log output to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// WithJSON switches the logger to one JSON object per line.
func WithJSON() Option {
	return func(l *Logger) { l.json = true }
}

// Logger writes leveled, optionally structured log lines.
type Logger struct {
	out    io.Writer
	json   bool
	fields []Field
}

// NewLogger creates a logger writing to stdout unless overridden.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{out: os.Stdout}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package-level default logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug toggles debug-level output globally.
func SetDebug(debug bool) {
	mu.Lock()
	defer mu.Unlock()
	isDebug = debug
}

func debugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return isDebug
}

// With returns a copy of the logger carrying additional fields.
func (l *Logger) With(fields ...Field) *Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &Logger{out: l.out, json: l.json, fields: merged}
}

func (l *Logger) Info(msg string) { l.log("INFO", msg) }
func (l *Logger) Infof(format string, args ...interface{}) { l.log("INFO", fmt.Sprintf(format, args...)) }
func (l *Logger) Warn(msg string) { l.log("WARN", msg) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.log("WARN", fmt.Sprintf(format, args...)) }
func (l *Logger) Error(msg string) { l.log("ERROR", msg) }
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log("ERROR", fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(msg string) {
	if debugEnabled() {
		l.log("DEBUG", msg)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if debugEnabled() {
		l.log("DEBUG", fmt.Sprintf(format, args...))
	}
}

func (l *Logger) log(level, msg string) {
	now := time.Now().Format("2006-01-02 15:04:05")

	if l.json {
		entry := map[string]interface{}{
			"timestamp": now,
			"level":     level,
			"message":   msg,
			"caller":    caller(),
		}
		for _, f := range l.fields {
			entry[f.Key] = f.Value
		}
		data, err := json.Marshal(entry)
		if err != nil {
			fmt.Fprintf(l.out, "[%s] %s: %s (marshal failed: %v)\n", now, level, msg, err)
			return
		}
		fmt.Fprintf(l.out, "%s\n", data)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s: %s", now, level, msg)
	if len(l.fields) > 0 {
		pairs := make([]string, len(l.fields))
		for i, f := range l.fields {
			pairs[i] = fmt.Sprintf("%s=%v", f.Key, f.Value)
		}
		sort.Strings(pairs)
		fmt.Fprintf(&sb, " %s", strings.Join(pairs, " "))
	}
	fmt.Fprintln(l.out, sb.String())
}

func caller() string {
	// Skip past the logging internals to the call site.
	for skip := 3; skip < 8; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if !strings.Contains(file, "internal/log") {
			return fmt.Sprintf("%s:%d", file, line)
		}
	}
	return "unknown"
}

// Package-level helpers on the default logger.

func With(fields ...Field) *Logger { return logger.With(fields...) }

func Info(msg string) { logger.Info(msg) }
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }
func Warn(msg string) { logger.Warn(msg) }
func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }
func Error(msg string) { logger.Error(msg) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Debug(msg string) { logger.Debug(msg) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
