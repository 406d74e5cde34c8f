// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

// Package labeled is the dimension-labeled layer over [ndarray]: a [Variable]
// names the axes of an array and carries attributes, a [Dataset] is a named
// collection of Variables with global attributes, and a [DataArray] is a
// single Variable viewed in the coordinate context of its owning Dataset.
//
// The comparison predicates defined here (Equals, Identical, AllClose) are
// the ground truth the assertion helpers in arrtest are built on. All of
// them are read-only, no comparison ever mutates an operand.
package labeled

import (
	"fmt"
	"slices"

	"github.com/corvess/ndlab/ndarray"
	"github.com/corvess/ndlab/utils/errors"
)

// Variable is a dimension-named array with attributes. Dimension names are
// ordered, one per array axis.
type Variable struct {
	dims  []string
	data  *ndarray.Array
	attrs map[string]any
}

// NewVariable builds a Variable, one dimension name per axis of data.
func NewVariable(dims []string, data *ndarray.Array, attrs map[string]any) (*Variable, error) {
	if data == nil {
		return nil, errors.New("labeled: variable needs data")
	}
	if len(dims) != data.NDim() {
		return nil, errors.Errorf(
			"labeled: %d dimension names %v for an array of %d axes", len(dims), dims, data.NDim())
	}
	for i, d := range dims {
		if slices.Index(dims, d) != i {
			return nil, errors.Errorf("labeled: duplicate dimension name %q", d)
		}
	}
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &Variable{dims: slices.Clone(dims), data: data, attrs: attrs}, nil
}

// Dims returns the ordered dimension names, one per axis.
func (v *Variable) Dims() []string { return slices.Clone(v.dims) }

// Data is the underlying array value.
func (v *Variable) Data() *ndarray.Array { return v.data }

// Attrs is the attribute mapping. Callers must treat it as read-only.
func (v *Variable) Attrs() map[string]any { return v.attrs }

// AsVariable returns v itself, satisfying [Comparable].
func (v *Variable) AsVariable() *Variable { return v }

// Equals is structural equality: same ordered dimension names and equivalent
// array data (NaN counting as equal to NaN). Attributes are ignored.
func (v *Variable) Equals(other *Variable) bool {
	if v == nil || other == nil {
		return v == other
	}
	return slices.Equal(v.dims, other.dims) && ndarray.Equiv(v.data, other.data)
}

// Identical is [Variable.Equals] plus attribute-mapping equivalence.
func (v *Variable) Identical(other *Variable) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Equals(other) && AttrsEquiv(v.attrs, other.attrs)
}

// AllClose requires the same ordered dimension names and data equivalent
// under [ndarray.AllcloseOrEquiv] with the given tolerances.
func (v *Variable) AllClose(other *Variable, rtol, atol float64) bool {
	if v == nil || other == nil {
		return v == other
	}
	return slices.Equal(v.dims, other.dims) &&
		ndarray.AllcloseOrEquiv(v.data, other.data, rtol, atol)
}

func (v *Variable) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Variable%v %v attrs=%v", v.dims, v.data, v.attrs)
}

// Comparable is the contract the arrtest assertion helpers rely on: anything
// handed to a Variable-level assertion must present itself as a Variable and
// expose its dimension names and attributes. Variable and DataArray both
// implement it, a new entity type must too rather than being reflected on at
// the call site.
type Comparable interface {
	AsVariable() *Variable
	Dims() []string
	Attrs() map[string]any
}

// AsVariable coerces a value into a *Variable: a Variable is returned as-is
// and anything implementing [Comparable] (such as a DataArray) is asked for
// its Variable. Anything else is an error.
func AsVariable(v any) (*Variable, error) {
	c, ok := v.(Comparable)
	if !ok {
		return nil, errors.Errorf("labeled: cannot use %T as a Variable", v)
	}
	return c.AsVariable(), nil
}
