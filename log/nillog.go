package log

import (
	"context"
	"log/slog"
)

// NewNilLogger creates a logger that discards everything.
func NewNilLogger() *slog.Logger {
	return slog.New(nilHandler{})
}

type nilHandler struct{}

func (nilHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nilHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nilHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nilHandler) WithGroup(string) slog.Handler           { return h }
