package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

const defaultBufferLimit = 256

type bufferedEntry struct {
	ctx    context.Context
	level  string
	msg    string
	fields []interface{}
}

// Buffer holds entries logged before configuration has produced the real
// logger. Once full it drops the oldest entries.
type Buffer struct {
	mu      sync.Mutex
	limit   int
	entries []bufferedEntry
}

// NewBuffer creates a buffer holding at most limit entries.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &Buffer{limit: limit}
}

// Logger returns a ports.Logger writing into the buffer.
func (b *Buffer) Logger() ports.Logger {
	return &bufferLogger{buffer: b}
}

// Len reports the number of buffered entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flush replays the buffered entries in order and empties the buffer.
func (b *Buffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	entries := b.entries
	b.entries = nil
	b.mu.Unlock()

	for _, e := range entries {
		switch e.level {
		case "debug":
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case "warn":
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case "error":
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
}

func (b *Buffer) add(e bufferedEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.entries) >= b.limit {
		b.entries = b.entries[1:]
	}
	b.entries = append(b.entries, e)
}

type bufferLogger struct {
	buffer *Buffer
	fields []interface{}
}

func (l *bufferLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "debug", msg, fields)
}

func (l *bufferLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "info", msg, fields)
}

func (l *bufferLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "warn", msg, fields)
}

func (l *bufferLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, "error", msg, fields)
}

func (l *bufferLogger) With(fields ...interface{}) ports.Logger {
	return &bufferLogger{buffer: l.buffer, fields: appendFields(l.fields, fields)}
}

func (l *bufferLogger) add(ctx context.Context, level, msg string, fields []interface{}) {
	l.buffer.add(bufferedEntry{ctx: ctx, level: level, msg: msg, fields: appendFields(l.fields, fields)})
}
