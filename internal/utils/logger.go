package utils

import (
	"context"

	"golang.org/x/exp/slog"
)

// nopHandler discards every record. Enabled reports false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// LoggerOrNop returns logger, or a logger that discards all output when logger is nil
func LoggerOrNop(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(nopHandler{})
	}
	return logger
}
