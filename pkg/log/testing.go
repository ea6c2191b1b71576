// Package log provides testing utilities for structured logging.
//
// TestLogger captures records as JSON lines in memory so tests can assert on
// what the fitter and the warning system emitted.

package log

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// TestLogger is a logger implementation designed for testing.
type TestLogger struct {
	mu     *sync.Mutex
	buffer *bytes.Buffer
	level  Level
	fields map[string]interface{}
}

// NewTestLogger creates a new TestLogger with the specified minimum level.
//
// Example:
//
//	logger, buffer := log.NewTestLogger(log.LevelDebug)
//	logger.Info("test message", "key", "value")
//	output := buffer.String()
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{
		mu:     &sync.Mutex{},
		buffer: buffer,
		level:  level,
		fields: make(map[string]interface{}),
	}, buffer
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) {
	if t.level <= LevelDebug {
		t.writeLog(LevelDebug, msg, fields...)
	}
}

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) {
	if t.level <= LevelInfo {
		t.writeLog(LevelInfo, msg, fields...)
	}
}

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) {
	if t.level <= LevelWarn {
		t.writeLog(LevelWarn, msg, fields...)
	}
}

// Error implements Logger.Error. A leading error value is stored under ErrAttrKey.
func (t *TestLogger) Error(msg string, fields ...any) {
	if t.level > LevelError {
		return
	}
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			fields = append([]any{ErrAttrKey, err}, fields[1:]...)
		}
	}
	t.writeLog(LevelError, msg, fields...)
}

// With implements Logger.With.
func (t *TestLogger) With(fields ...any) Logger {
	newFields := make(map[string]interface{}, len(t.fields))
	for k, v := range t.fields {
		newFields[k] = v
	}
	addFields(newFields, fields)

	return &TestLogger{
		mu:     t.mu,
		buffer: t.buffer,
		level:  t.level,
		fields: newFields,
	}
}

// Enabled implements Logger.Enabled.
func (t *TestLogger) Enabled(ctx context.Context, level Level) bool {
	return t.level <= level
}

func addFields(dst map[string]interface{}, fields []any) {
	for i := 0; i < len(fields)-1; i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		if err, ok := fields[i+1].(error); ok {
			dst[key] = err.Error()
			continue
		}
		dst[key] = fields[i+1]
	}
}

// writeLog writes a log entry to the buffer in JSON format.
func (t *TestLogger) writeLog(level Level, msg string, fields ...any) {
	entry := map[string]interface{}{
		"level":   level.String(),
		"message": msg,
	}
	for k, v := range t.fields {
		entry[k] = v
	}
	addFields(entry, fields)

	jsonData, _ := json.Marshal(entry)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.Write(jsonData)
	t.buffer.WriteByte('\n')
}

// GetLogEntries parses the captured log output and returns structured log entries.
func (t *TestLogger) GetLogEntries() ([]map[string]interface{}, error) {
	t.mu.Lock()
	raw := t.buffer.String()
	t.mu.Unlock()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ContainsMessage checks if the captured logs contain a message with the specified content.
func (t *TestLogger) ContainsMessage(message string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Contains(t.buffer.String(), message)
}

// ContainsField checks if the captured logs contain an entry with the specified field and value.
// JSON numbers compare as float64.
func (t *TestLogger) ContainsField(key string, value interface{}) bool {
	entries, err := t.GetLogEntries()
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if fieldValue, exists := entry[key]; exists && fieldValue == value {
			return true
		}
	}
	return false
}

// Clear clears all captured log content.
func (t *TestLogger) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.Reset()
}

// TestLoggerProvider implements LoggerProvider for testing scenarios.
type TestLoggerProvider struct {
	logger *TestLogger
}

// NewTestLoggerProvider creates a new test logger provider.
func NewTestLoggerProvider(level Level) (*TestLoggerProvider, *TestLogger) {
	logger, _ := NewTestLogger(level)
	return &TestLoggerProvider{logger: logger}, logger
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *TestLoggerProvider) GetLogger() Logger {
	return p.logger
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *TestLoggerProvider) GetLoggerWithName(name string) Logger {
	return p.logger.With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *TestLoggerProvider) SetLevel(level Level) {
	p.logger.mu.Lock()
	defer p.logger.mu.Unlock()
	p.logger.level = level
}
