// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package singleton provides a single, process-wide instance.
//
// The instance is built once while the package is initialized, before any
// caller can reach [Instance]. Its concrete type is unexported so no other
// package is able to construct a second one.
package singleton

import (
	"context"
	"sync"
	"sync/atomic"
)

// Singleton is the behaviour exposed by the process-wide instance.
type Singleton interface {
	// SomeMethod is a placeholder operation on the shared instance.
	SomeMethod()

	// Calls reports how many times SomeMethod has been called.
	Calls() int64

	// sealed keeps implementations inside this package.
	sealed()
}

var (
	constructions atomic.Int64

	instance = sync.OnceValue(newSingleton)
)

func init() {
	instance()
}

type singleton struct {
	calls atomic.Int64
}

func newSingleton() *singleton {
	constructions.Add(1)
	return &singleton{}
}

// Instance returns the process-wide instance. Every call returns the same value.
func Instance() Singleton {
	return instance()
}

func (s *singleton) SomeMethod() {
	s.calls.Add(1)
}

func (s *singleton) Calls() int64 {
	return s.calls.Load()
}

func (*singleton) sealed() {}

type key struct{}

var contextKey = &key{}

// NewContext returns a new [context.Context] carrying s, for code which
// prefers receiving the instance explicitly over calling [Instance].
func NewContext(parent context.Context, s Singleton) context.Context {
	return context.WithValue(parent, contextKey, s)
}

// FromContext tries to extract a Singleton from the given [context.Context].
func FromContext(ctx context.Context) (Singleton, bool) {
	s, ok := ctx.Value(contextKey).(Singleton)
	return s, ok
}
