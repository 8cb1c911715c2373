package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

type logEntry struct {
	level  string
	msg    string
	fields []interface{}
}

// recordingLogger captures entries across With-derived children.
type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
	base    []interface{}
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (l *recordingLogger) record(level, msg string, fields []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := append(append([]interface{}{}, l.base...), fields...)
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg, fields: all})
}

func (l *recordingLogger) Debug(_ context.Context, msg string, fields ...interface{}) {
	l.record("debug", msg, fields)
}

func (l *recordingLogger) Info(_ context.Context, msg string, fields ...interface{}) {
	l.record("info", msg, fields)
}

func (l *recordingLogger) Warn(_ context.Context, msg string, fields ...interface{}) {
	l.record("warn", msg, fields)
}

func (l *recordingLogger) Error(_ context.Context, msg string, fields ...interface{}) {
	l.record("error", msg, fields)
}

func (l *recordingLogger) With(fields ...interface{}) ports.Logger {
	return &recordingLogger{mu: l.mu, entries: l.entries, base: append(append([]interface{}{}, l.base...), fields...)}
}

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range *l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

func (l *recordingLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range *l.entries {
		if e.level == level && e.msg == msg {
			return true
		}
	}
	return false
}

func (e logEntry) String() string {
	return fmt.Sprintf("%s %s %v", e.level, e.msg, e.fields)
}
