// SPDX-License-Identifier: MIT

// Package xlog holds the logger plumbing shared by the generator packages.
//
// Generators never read a process-wide logger. Each instance receives a
// *slog.Logger through its options and falls back to a logger that discards
// everything, so disabled logging costs a single Enabled check.
package xlog

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Nop returns a logger that discards all output.
func Nop() *slog.Logger { return slog.New(nopHandler{}) }

// Or returns l, or a Nop logger when l is nil.
func Or(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Nop()
	}
	return l
}
