// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package observer

import (
	"io"
	"log/slog"

	"github.com/z5labs/patterns/internal/otelslog"

	"go.opentelemetry.io/otel/trace"
)

type commonOptions struct {
	logHandler slog.Handler
}

type subjectOptions struct {
	commonOptions

	tp trace.TracerProvider
}

type observerOptions struct {
	commonOptions

	out io.Writer
}

// SubjectOption configures a StateSubject.
type SubjectOption interface {
	applySubject(*subjectOptions)
}

// ObserverOption configures a NamedObserver.
type ObserverOption interface {
	applyObserver(*observerOptions)
}

// CommonOption configures both a StateSubject and a NamedObserver.
type CommonOption interface {
	SubjectOption
	ObserverOption
}

type commonOptionFunc func(*commonOptions)

func (f commonOptionFunc) applySubject(so *subjectOptions) {
	f(&so.commonOptions)
}

func (f commonOptionFunc) applyObserver(oo *observerOptions) {
	f(&oo.commonOptions)
}

type subjectOptionFunc func(*subjectOptions)

func (f subjectOptionFunc) applySubject(so *subjectOptions) {
	f(so)
}

type observerOptionFunc func(*observerOptions)

func (f observerOptionFunc) applyObserver(oo *observerOptions) {
	f(oo)
}

// LogHandler sets the slog.Handler used for debug logging. Records are
// correlated with the notification span when one is active.
func LogHandler(h slog.Handler) CommonOption {
	return commonOptionFunc(func(co *commonOptions) {
		co.logHandler = otelslog.Wrap(h)
	})
}

// TracerProvider overrides the global OpenTelemetry TracerProvider.
func TracerProvider(tp trace.TracerProvider) SubjectOption {
	return subjectOptionFunc(func(so *subjectOptions) {
		so.tp = tp
	})
}

// Output sets where a NamedObserver writes. A nil writer is ignored.
func Output(w io.Writer) ObserverOption {
	return observerOptionFunc(func(oo *observerOptions) {
		if w == nil {
			return
		}
		oo.out = w
	})
}
