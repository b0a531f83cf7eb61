// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides structured logging on top of log/slog.
// Library packages obtain a contextual logger via WithContext; the process
// entry point decides the handler and verbosity through SetDefault.
package log

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// Logger writes structured log records.
type Logger interface {
	With(ctx ...any) Logger
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
}

type logger struct {
	inner *slog.Logger
}

func (l *logger) With(ctx ...any) Logger {
	return &logger{l.inner.With(ctx...)}
}

func (l *logger) Debug(msg string, ctx ...any) { l.inner.Debug(msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)  { l.inner.Info(msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)  { l.inner.Warn(msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any) { l.inner.Error(msg, ctx...) }

var root atomic.Pointer[logger]

func init() {
	root.Store(&logger{slog.New(DiscardHandler())})
}

// SetDefault sets the handler of the root logger, from which all contextual
// loggers derive.
func SetDefault(handler slog.Handler) {
	root.Store(&logger{slog.New(handler)})
}

// NewTextHandler returns a plain text handler writing to w at the given level.
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// NewJSONHandler returns a JSON handler writing to w at the given level.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// WithContext returns a logger carrying the given context key/value pairs.
func WithContext(ctx ...any) Logger {
	return root.Load().With(ctx...)
}

// Debug logs at debug level with the root logger.
func Debug(msg string, ctx ...any) { root.Load().Debug(msg, ctx...) }

// Info logs at info level with the root logger.
func Info(msg string, ctx ...any) { root.Load().Info(msg, ctx...) }

// Warn logs at warn level with the root logger.
func Warn(msg string, ctx ...any) { root.Load().Warn(msg, ctx...) }

// Error logs at error level with the root logger.
func Error(msg string, ctx ...any) { root.Load().Error(msg, ctx...) }
