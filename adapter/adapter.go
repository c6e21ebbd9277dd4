// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package adapter lets a client call an incompatible implementation
// through the interface it already expects.
//
// A [Client] only knows about [Target]. The pre-existing [Adaptee] exposes
// SpecificRequest instead of Request, so an [Adapter] owns an Adaptee and
// forwards every Request to it.
package adapter

import (
	"fmt"
	"io"
	"os"
)

// Target is the capability a Client expects to call.
type Target interface {
	Request()
}

type adapteeOptions struct {
	out io.Writer
}

// AdapteeOption configures an Adaptee.
type AdapteeOption func(*adapteeOptions)

// Output sets where the Adaptee writes. A nil writer is ignored.
func Output(w io.Writer) AdapteeOption {
	return func(ao *adapteeOptions) {
		if w == nil {
			return
		}
		ao.out = w
	}
}

// Adaptee is the existing implementation whose method set
// does not satisfy Target.
type Adaptee struct {
	out io.Writer
}

// NewAdaptee returns an Adaptee writing to os.Stdout unless
// configured otherwise.
func NewAdaptee(opts ...AdapteeOption) *Adaptee {
	ao := &adapteeOptions{
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(ao)
	}
	return &Adaptee{out: ao.out}
}

// SpecificRequest writes a fixed line to the Adaptee output.
func (a *Adaptee) SpecificRequest() {
	fmt.Fprintln(a.out, "Adaptee method called")
}

// NilAdapteeError is returned when an Adapter is asked to wrap a nil Adaptee.
type NilAdapteeError struct{}

// Error implements the [builtin.error] interface.
func (NilAdapteeError) Error() string {
	return "adapter: can not wrap a nil adaptee"
}

// Adapter implements Target on top of an Adaptee.
type Adapter struct {
	adaptee *Adaptee
}

// New returns an Adapter owning a newly built Adaptee.
func New(opts ...AdapteeOption) *Adapter {
	return &Adapter{adaptee: NewAdaptee(opts...)}
}

// Wrap returns an Adapter forwarding to the given Adaptee.
func Wrap(a *Adaptee) (*Adapter, error) {
	if a == nil {
		return nil, NilAdapteeError{}
	}
	return &Adapter{adaptee: a}, nil
}

// Request implements the [Target] interface.
func (a *Adapter) Request() {
	a.adaptee.SpecificRequest()
}

// Client depends on Target alone.
type Client struct{}

// DoWork calls Request on t exactly once.
func (Client) DoWork(t Target) {
	t.Request()
}
