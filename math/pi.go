// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math computes mathematical constants with fixed-point arithmetic.
package math

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/db47h/fixed"
)

// An Engine computes π with the Machin formula
//
//	π = 16×arctan(1/5) - 4×arctan(1/239)
//
// An Engine holds no state besides its configuration and is safe for
// concurrent use.
type Engine struct {
	log   logr.Logger
	guard uint
}

// An Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger of an Engine. Progress is logged at V(1) and
// per-series details at V(2).
func WithLogger(l logr.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithGuardDigits overrides the number of guard digits. A value of 0 selects
// fixed.GuardDigits(digits).
func WithGuardDigits(guard uint) Option {
	return func(e *Engine) { e.guard = guard }
}

// New returns a new Engine configured with opts.
func New(opts ...Option) *Engine {
	e := &Engine{log: logr.Discard()}
	for _, o := range opts {
		o(e)
	}
	return e
}

var std = New()

// Context returns a new fixed.Context suitable to compute constants to digits
// decimal places with e.
func (e *Engine) Context(digits uint) *fixed.Context {
	if e.guard == 0 {
		return fixed.NewContext(digits)
	}
	return fixed.NewContextGuard(digits, e.guard)
}

// Pi returns π truncated to digits decimal places. If digits is 0, the
// result is "3".
func (e *Engine) Pi(digits uint) string {
	l := e.log.WithValues("digits", digits)
	l.V(1).Info("computing π")
	start := time.Now()
	s := e.pi(e.Context(digits)).String()
	l.V(1).Info("computed π", "elapsed", time.Since(start))
	return s
}

func (e *Engine) pi(ctx *fixed.Context) fixed.Number {
	l := e.log.V(2).WithValues("prec", ctx.Prec(), "guard", ctx.Guard())
	a, n := atan(ctx, 5)
	l.Info("series done", "d", 5, "iterations", n)
	b, n := atan(ctx, 239)
	l.Info("series done", "d", 239, "iterations", n)
	return a.MulInt(4).Sub(b).MulInt(4)
}

// Pi returns π computed to the scale of ctx.
func Pi(ctx *fixed.Context) fixed.Number {
	return std.pi(ctx)
}

// PiString returns π truncated to digits decimal places, formatted as
// "3.1415...". If digits is 0, the result is "3".
func PiString(digits uint) string {
	return std.Pi(digits)
}
