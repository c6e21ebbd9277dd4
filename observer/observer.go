// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package observer provides one-to-many, synchronous change notification.
//
// A [StateSubject] keeps an ordered list of [Observer]s. Every time its state
// is set, it calls Update on each attached Observer, in attachment order, on
// the calling goroutine. Observers pull the new state back from the subject
// through a [StateReader] they were given at construction.
//
// # Semantics
//
//   - Attaching the same Observer twice results in two notifications per change.
//   - Detach removes the first matching entry and is a no-op for unknown Observers.
//   - Setting the state to its current value still notifies.
//   - A panic raised by an Observer propagates to the caller and the
//     remaining Observers are not notified.
package observer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/z5labs/patterns/internal/noop"
	"github.com/z5labs/patterns/internal/slogfield"
)

// Observer is notified by a Subject after its state changes.
//
// Observers are compared with == on Detach. An Observer whose dynamic
// value is not comparable, e.g. a func or slice type, can be attached
// but Detach will never remove it. Pointer types are always comparable.
type Observer interface {
	Update()
}

// Subject manages a list of Observers.
type Subject interface {
	Attach(Observer)
	Detach(Observer)
	Notify()
}

// StateReader exposes the current state of a subject.
type StateReader interface {
	State() string
}

// NilSubjectError is returned when an Observer is built without a subject.
type NilSubjectError struct {
	Name string
}

// Error implements the [builtin.error] interface.
func (e NilSubjectError) Error() string {
	return fmt.Sprintf("observer %q: subject must not be nil", e.Name)
}

// NamedObserver prints the subject state every time it is notified.
// It does not own its subject.
type NamedObserver struct {
	name    string
	subject StateReader
	out     io.Writer
	log     *slog.Logger

	mu        sync.Mutex
	lastState string
}

// NewNamedObserver returns an Observer which reads state from subject.
func NewNamedObserver(name string, subject StateReader, opts ...ObserverOption) (*NamedObserver, error) {
	if subject == nil {
		return nil, NilSubjectError{Name: name}
	}

	oo := &observerOptions{
		commonOptions: commonOptions{
			logHandler: noop.LogHandler{},
		},
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt.applyObserver(oo)
	}

	o := &NamedObserver{
		name:    name,
		subject: subject,
		out:     oo.out,
		log:     slog.New(oo.logHandler).With(slogfield.ObserverName(name)),
	}
	return o, nil
}

// Name returns the display name of the observer.
func (o *NamedObserver) Name() string {
	return o.name
}

// LastState returns the state read during the most recent Update.
func (o *NamedObserver) LastState() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastState
}

// Update implements the [Observer] interface.
func (o *NamedObserver) Update() {
	state := o.subject.State()

	o.mu.Lock()
	o.lastState = state
	o.mu.Unlock()

	o.log.Debug("observed new state", slogfield.State(state))
	fmt.Fprintf(o.out, "%s's new state is %s\n", o.name, state)
}
