// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides the slog attributes shared by the pattern packages.
package slogfield

import "log/slog"

// ObserverName returns an slog.Attr for the display name of an observer.
func ObserverName(name string) slog.Attr {
	return slog.String("observer_name", name)
}

// ObserverCount returns an slog.Attr for the number of attached observers.
func ObserverCount(n int) slog.Attr {
	return slog.Int("observer_count", n)
}

// State returns an slog.Attr for a subject state value.
func State(s string) slog.Attr {
	return slog.String("state", s)
}

// Found returns an slog.Attr reporting whether a lookup matched anything.
func Found(ok bool) slog.Attr {
	return slog.Bool("found", ok)
}
