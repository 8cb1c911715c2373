package logging

import (
	"context"
	"fmt"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

// TextLogger implements ports.Logger on charmbracelet/log.
type TextLogger struct {
	logger *cblog.Logger
	fields []interface{}
	layer  string
}

// NewText creates a charmbracelet/log backed logger.
func NewText(opts Options) (*TextLogger, error) {
	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	formatter := cblog.TextFormatter
	if strings.EqualFold(opts.Format, FormatJSON) {
		formatter = cblog.JSONFormatter
	}

	base := cblog.NewWithOptions(opts.writer(), cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: opts.TimeFormat != "",
		Formatter:       formatter,
	})

	return &TextLogger{logger: base, fields: opts.baseFields(), layer: opts.layer()}, nil
}

// Debug implements ports.Logger.
func (l *TextLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, fields)
}

// Info implements ports.Logger.
func (l *TextLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, fields)
}

// Warn implements ports.Logger.
func (l *TextLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, fields)
}

// Error implements ports.Logger.
func (l *TextLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, fields)
}

// With implements ports.Logger.
func (l *TextLogger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return Nop()
	}
	return &TextLogger{logger: l.logger, fields: appendFields(l.fields, fields), layer: l.layer}
}

func (l *TextLogger) log(ctx context.Context, level cblog.Level, msg string, fields []interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	payload := mergeFields(l.fields, fields, map[string]interface{}{
		"layer":          l.layer,
		"correlation_id": ports.GetCorrelationID(ctx),
	})
	l.logger.Log(level, msg, payload...)
}
