// Package logging provides the structured logger used across the build
// pipeline.
package logging

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Logger is the structured logging interface consumed by the pipeline and
// its stages.
type Logger interface {
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
	Debug(msg string, fields map[string]any)
}

// JSONLogger writes one JSON object per entry to an io.Writer.
type JSONLogger struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
}

// NewJSONLogger creates a JSONLogger writing to w. Debug entries are only
// emitted when verbose is true.
func NewJSONLogger(w io.Writer, verbose bool) *JSONLogger {
	return &JSONLogger{w: w, verbose: verbose}
}

func (l *JSONLogger) Info(msg string, fields map[string]any)  { l.emit("info", msg, fields) }
func (l *JSONLogger) Warn(msg string, fields map[string]any)  { l.emit("warn", msg, fields) }
func (l *JSONLogger) Error(msg string, fields map[string]any) { l.emit("error", msg, fields) }

func (l *JSONLogger) Debug(msg string, fields map[string]any) {
	if !l.verbose {
		return
	}
	l.emit("debug", msg, fields)
}

func (l *JSONLogger) emit(level, msg string, fields map[string]any) {
	entry := make(map[string]any, len(fields)+3)
	entry["time"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = level
	entry["msg"] = msg
	for k, v := range fields {
		entry[k] = v
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	data, _ := json.Marshal(entry)
	data = append(data, '\n')
	l.w.Write(data) //nolint:errcheck
}

// Discard returns a Logger that drops every entry. Useful for tests and for
// callers that only want the pipeline's returned errors.
func Discard() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Debug(string, map[string]any) {}
