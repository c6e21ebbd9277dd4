// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package noop provides do-nothing defaults for optional dependencies.
package noop

import (
	"context"
	"log/slog"
)

// LogHandler is an slog.Handler which drops every record. It reports
// every level as disabled so callers skip building attributes.
type LogHandler struct{}

// Enabled implements the slog.Handler interface.
func (LogHandler) Enabled(context.Context, slog.Level) bool { return false }

// Handle implements the slog.Handler interface.
func (LogHandler) Handle(context.Context, slog.Record) error { return nil }

// WithAttrs implements the slog.Handler interface.
func (h LogHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

// WithGroup implements the slog.Handler interface.
func (h LogHandler) WithGroup(string) slog.Handler { return h }
