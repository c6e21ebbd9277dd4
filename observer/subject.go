// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package observer

import (
	"context"
	"log/slog"
	"reflect"
	"sync"

	"github.com/z5labs/patterns/internal/noop"
	"github.com/z5labs/patterns/internal/slogfield"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/z5labs/patterns/observer"

// StateSubject is a Subject holding a single string state.
type StateSubject struct {
	log    *slog.Logger
	tracer trace.Tracer

	mu        sync.RWMutex
	state     string
	observers []Observer
}

// NewStateSubject returns a StateSubject with no observers and an empty state.
func NewStateSubject(opts ...SubjectOption) *StateSubject {
	so := &subjectOptions{
		commonOptions: commonOptions{
			logHandler: noop.LogHandler{},
		},
		tp: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt.applySubject(so)
	}

	return &StateSubject{
		log:    slog.New(so.logHandler),
		tracer: so.tp.Tracer(instrumentationName),
	}
}

// Attach implements the [Subject] interface. Observers are appended
// even if already attached.
func (s *StateSubject) Attach(o Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	n := len(s.observers)
	s.mu.Unlock()

	s.log.Debug("attached observer", slogfield.ObserverCount(n))
}

// Detach implements the [Subject] interface. Only the first
// matching entry is removed and the subject keeps no reference to it.
// Observers whose dynamic value can not be compared with == are
// never matched, so Detach leaves them attached instead of panicking.
func (s *StateSubject) Detach(o Observer) {
	if !isComparable(o) {
		s.log.Debug("ignored detach of incomparable observer")
		return
	}

	s.mu.Lock()
	found := false
	for i, obs := range s.observers {
		if !isComparable(obs) || obs != o {
			continue
		}
		last := len(s.observers) - 1
		copy(s.observers[i:], s.observers[i+1:])
		s.observers[last] = nil
		s.observers = s.observers[:last]
		found = true
		break
	}
	n := len(s.observers)
	s.mu.Unlock()

	s.log.Debug("detached observer", slogfield.Found(found), slogfield.ObserverCount(n))
}

func isComparable(o Observer) bool {
	if o == nil {
		return true
	}
	return reflect.ValueOf(o).Comparable()
}

// Observers returns a copy of the attached observers in attachment order.
func (s *StateSubject) Observers() []Observer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	return observers
}

// State implements the [StateReader] interface.
func (s *StateSubject) State() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetState overwrites the state and notifies every observer.
func (s *StateSubject) SetState(v string) {
	s.SetStateContext(context.Background(), v)
}

// SetStateContext is SetState with a context used for tracing and logging.
func (s *StateSubject) SetStateContext(ctx context.Context, v string) {
	s.mu.Lock()
	s.state = v
	s.mu.Unlock()

	s.NotifyContext(ctx)
}

// Notify implements the [Subject] interface.
func (s *StateSubject) Notify() {
	s.NotifyContext(context.Background())
}

// NotifyContext calls Update on a snapshot of the attached observers,
// in attachment order, without holding any lock. Observers are free
// to read the state or change the subscriptions from Update.
func (s *StateSubject) NotifyContext(ctx context.Context) {
	observers := s.Observers()
	state := s.State()

	spanCtx, span := s.tracer.Start(
		ctx,
		"StateSubject.Notify",
		trace.WithAttributes(attribute.Int("observer.count", len(observers))),
	)
	defer span.End()

	s.log.DebugContext(spanCtx, "notifying observers", slogfield.State(state), slogfield.ObserverCount(len(observers)))
	for _, o := range observers {
		o.Update()
	}
}
