// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package labeled

import (
	"fmt"
	"slices"

	"github.com/corvess/ndlab/utils/errors"
)

// DataArray is one variable of a [Dataset] viewed together with the
// coordinate context the dataset provides for its dimensions.
type DataArray struct {
	name string
	ds   *Dataset
}

// NewDataArray binds the named variable of ds.
func NewDataArray(name string, ds *Dataset) (*DataArray, error) {
	if ds == nil {
		return nil, errors.New("labeled: data array needs an owning dataset")
	}
	if _, ok := ds.Var(name); !ok {
		return nil, errors.Errorf("labeled: dataset has no variable %q", name)
	}
	return &DataArray{name: name, ds: ds}, nil
}

// Name is the bound variable's name.
func (da *DataArray) Name() string { return da.name }

// Dataset is the owning dataset.
func (da *DataArray) Dataset() *Dataset { return da.ds }

// AsVariable returns the bound variable, satisfying [Comparable].
func (da *DataArray) AsVariable() *Variable { return da.ds.vars[da.name] }

// Dims returns the bound variable's ordered dimension names.
func (da *DataArray) Dims() []string { return da.AsVariable().Dims() }

// Attrs returns the bound variable's attribute mapping.
func (da *DataArray) Attrs() map[string]any { return da.AsVariable().Attrs() }

// Indexes returns the owning dataset's index variables restricted to the
// dimensions this array actually spans.
func (da *DataArray) Indexes() map[string]*Variable {
	dims := da.AsVariable().dims
	out := map[string]*Variable{}
	for name, v := range da.ds.Indexes() {
		if slices.Contains(dims, name) {
			out[name] = v
		}
	}
	return out
}

// Equals holds when the bound variables are structurally equal and the two
// arrays have equal indexes.
func (da *DataArray) Equals(other *DataArray) bool {
	if da == nil || other == nil {
		return da == other
	}
	return da.AsVariable().Equals(other.AsVariable()) &&
		indexesEqual(da.Indexes(), other.Indexes())
}

// Identical holds when both arrays are bound to the same name and their
// owning datasets are identical. Comparing the whole owning dataset rather
// than just the coordinates of this array's dimensions is deliberate: the
// dataset is the array's full context and two arrays over different
// datasets are not the same array even when their own values agree.
func (da *DataArray) Identical(other *DataArray) bool {
	if da == nil || other == nil {
		return da == other
	}
	return da.name == other.name && da.ds.Identical(other.ds)
}

// AllClose holds when the bound variables are all-close under the given
// tolerances and the two arrays have equal indexes.
func (da *DataArray) AllClose(other *DataArray, rtol, atol float64) bool {
	if da == nil || other == nil {
		return da == other
	}
	return da.AsVariable().AllClose(other.AsVariable(), rtol, atol) &&
		indexesEqual(da.Indexes(), other.Indexes())
}

func (da *DataArray) String() string {
	if da == nil {
		return "<nil>"
	}
	return fmt.Sprintf("DataArray(%q) %v", da.name, da.AsVariable())
}

// Indexer is anything exposing named index variables: Dataset and DataArray.
type Indexer interface {
	Indexes() map[string]*Variable
}

func indexesEqual(a, b map[string]*Variable) bool {
	if len(a) != len(b) {
		return false
	}
	for name, v := range a {
		if !v.Equals(b[name]) {
			return false
		}
	}
	return true
}
