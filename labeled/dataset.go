// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package labeled

import (
	"fmt"
	"slices"
	"strings"

	"github.com/corvess/ndlab/utils/errors"
	"github.com/corvess/ndlab/utils/sliceutils"
)

// Dataset is a mapping from name to [Variable] plus a global attribute
// mapping. Variables sharing a dimension name must agree on its length.
type Dataset struct {
	vars  map[string]*Variable
	attrs map[string]any
}

// NewDataset builds a Dataset, validating that every dimension name has a
// single consistent length across all variables.
func NewDataset(vars map[string]*Variable, attrs map[string]any) (*Dataset, error) {
	dimLen := map[string]int{}
	for _, name := range sliceutils.SortedKeys(vars) {
		v := vars[name]
		if v == nil {
			return nil, errors.Errorf("labeled: variable %q is nil", name)
		}
		shape := v.Data().Shape()
		for i, dim := range v.dims {
			if have, ok := dimLen[dim]; ok && have != shape[i] {
				return nil, errors.Errorf(
					"labeled: conflicting lengths for dimension %q: %d and %d", dim, have, shape[i])
			}
			dimLen[dim] = shape[i]
		}
	}
	if vars == nil {
		vars = map[string]*Variable{}
	}
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &Dataset{vars: vars, attrs: attrs}, nil
}

// Var looks up a variable by name.
func (d *Dataset) Var(name string) (*Variable, bool) {
	v, ok := d.vars[name]
	return v, ok
}

// Names returns all variable names in sorted order.
func (d *Dataset) Names() []string { return sliceutils.SortedKeys(d.vars) }

// Attrs is the global attribute mapping. Callers must treat it as read-only.
func (d *Dataset) Attrs() map[string]any { return d.attrs }

// Indexes returns the index variables: the 1-d variables named after their
// own dimension, which act as the coordinate labels used for alignment.
func (d *Dataset) Indexes() map[string]*Variable {
	out := map[string]*Variable{}
	for name, v := range d.vars {
		if len(v.dims) == 1 && v.dims[0] == name {
			out[name] = v
		}
	}
	return out
}

// Equals holds when both datasets have the same variable names and every
// pair of same-named variables is structurally equal. The name sets are
// compared first so a mismatched set fails as a whole rather than on
// whichever variable a map traversal happens to reach first.
func (d *Dataset) Equals(other *Dataset) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !slices.Equal(d.Names(), other.Names()) {
		return false
	}
	for name, v := range d.vars {
		if !v.Equals(other.vars[name]) {
			return false
		}
	}
	return true
}

// Identical is [Dataset.Equals] strengthened to global attribute equivalence
// and per-variable [Variable.Identical].
func (d *Dataset) Identical(other *Dataset) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !AttrsEquiv(d.attrs, other.attrs) {
		return false
	}
	if !slices.Equal(d.Names(), other.Names()) {
		return false
	}
	for name, v := range d.vars {
		if !v.Identical(other.vars[name]) {
			return false
		}
	}
	return true
}

// AllClose holds when both datasets have the same variable names and every
// pair of same-named variables is all-close under the given tolerances.
func (d *Dataset) AllClose(other *Dataset, rtol, atol float64) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !slices.Equal(d.Names(), other.Names()) {
		return false
	}
	for name, v := range d.vars {
		if !v.AllClose(other.vars[name], rtol, atol) {
			return false
		}
	}
	return true
}

func (d *Dataset) String() string {
	if d == nil {
		return "<nil>"
	}
	lines := sliceutils.Map(d.Names(), func(name string) string {
		return fmt.Sprintf("  %s: %v", name, d.vars[name])
	})
	return fmt.Sprintf("Dataset{\n%s\n} attrs=%v", strings.Join(lines, "\n"), d.attrs)
}
