package logging

import (
	"context"

	"github.com/alexisbeaulieu97/folio/internal/ports"
)

type nopLogger struct{}

var nop ports.Logger = nopLogger{}

// Nop returns a logger that discards everything.
func Nop() ports.Logger { return nop }

func (nopLogger) Debug(context.Context, string, ...interface{}) {}
func (nopLogger) Info(context.Context, string, ...interface{}) {}
func (nopLogger) Warn(context.Context, string, ...interface{}) {}
func (nopLogger) Error(context.Context, string, ...interface{}) {}
func (nopLogger) With(...interface{}) ports.Logger { return nop }
