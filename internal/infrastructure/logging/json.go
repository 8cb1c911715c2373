package logging

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// JSONLogger implements ports.Logger on zerolog, one JSON object per line.
type JSONLogger struct {
	base   zerolog.Logger
	fields []interface{}
	layer  string
}

// NewJSON creates a zerolog backed logger.
func NewJSON(opts Options) (*JSONLogger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	ctx := zerolog.New(opts.writer()).Level(level).With()
	if opts.TimeFormat != "" {
		ctx = ctx.Timestamp()
	}
	return &JSONLogger{base: ctx.Logger(), fields: opts.baseFields(), layer: opts.layer()}, nil
}

// Debug implements ports.Logger.
func (l *JSONLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.DebugLevel, msg, fields)
}

// Info implements ports.Logger.
func (l *JSONLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.InfoLevel, msg, fields)
}

// Warn implements ports.Logger.
func (l *JSONLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.WarnLevel, msg, fields)
}

// Error implements ports.Logger.
func (l *JSONLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.ErrorLevel, msg, fields)
}

// With implements ports.Logger.
func (l *JSONLogger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return Nop()
	}
	return &JSONLogger{base: l.base, fields: appendFields(l.fields, fields), layer: l.layer}
}

func (l *JSONLogger) log(ctx context.Context, level zerolog.Level, msg string, fields []interface{}) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if event == nil {
		return
	}
	payload := mergeFields(l.fields, fields, map[string]interface{}{
		"layer":          l.layer,
		"correlation_id": ports.GetCorrelationID(ctx),
	})
	for i := 0; i+1 < len(payload); i += 2 {
		key := payload[i].(string)
		switch value := payload[i+1].(type) {
		case error:
			event = event.AnErr(key, value)
		case string:
			event = event.Str(key, value)
		default:
			event = event.Interface(key, value)
		}
	}
	event.Msg(msg)
}
