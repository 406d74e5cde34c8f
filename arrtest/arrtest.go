// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

// Package arrtest is the test-support layer for the labeled array types: one
// assertion per entity kind and equality strength (equal, identical,
// all-close), plus helpers for skipping tests when an optional numeric
// backend is not installed. Every assertion is a hard failure, it calls
// Fatalf with both operands in the message and does not return a value on
// success.
package arrtest

import (
	"testing"

	"github.com/corvess/ndlab/labeled"
	"github.com/corvess/ndlab/ndarray"
)

// Option adjusts the tolerances of the all-close assertions.
type Option func(*Tolerance)

// Tolerance holds the relative and absolute tolerance of an all-close
// comparison, a and b being close meaning |a-b| <= ATol + RTol*|b|.
type Tolerance struct {
	RTol, ATol float64
}

// WithRTol overrides the relative tolerance (default 1e-5).
func WithRTol(rtol float64) Option {
	return func(tol *Tolerance) { tol.RTol = rtol }
}

// WithATol overrides the absolute tolerance (default 1e-8).
func WithATol(atol float64) Option {
	return func(tol *Tolerance) { tol.ATol = atol }
}

func newTolerance(opts []Option) Tolerance {
	tol := Tolerance{RTol: ndarray.DefaultRTol, ATol: ndarray.DefaultATol}
	for _, opt := range opts {
		opt(&tol)
	}
	return tol
}

// coerce turns an assertion operand into a *Variable, failing the test for
// types which cannot stand in for one.
func coerce(t testing.TB, v any) *labeled.Variable {
	t.Helper()
	variable, err := labeled.AsVariable(v)
	if err != nil {
		t.Fatalf("%+v", err)
		return nil
	}
	return variable
}
