// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package labeled_test

import (
	"testing"

	"github.com/corvess/ndlab/labeled"
	"github.com/corvess/ndlab/ndarray"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func mustDataArray(t *testing.T, name string, ds *labeled.Dataset) *labeled.DataArray {
	t.Helper()
	da, err := labeled.NewDataArray(name, ds)
	assert.NilError(t, err)
	return da
}

func TestNewDataArrayValidation(t *testing.T) {
	t.Parallel()
	ds := makeDataset(t, nil, nil)
	_, err := labeled.NewDataArray("missing", ds)
	assert.ErrorContains(t, err, `no variable "missing"`)
	_, err = labeled.NewDataArray("temp", nil)
	assert.ErrorContains(t, err, "owning dataset")
}

func TestDataArrayAccessors(t *testing.T) {
	t.Parallel()
	ds := makeDataset(t, nil, map[string]any{"units": "degC"})
	da := mustDataArray(t, "temp", ds)
	assert.Equal(t, da.Name(), "temp")
	assert.Equal(t, da.Dataset(), ds)
	assert.Assert(t, is.DeepEqual(da.Dims(), []string{"x"}))
	assert.Equal(t, da.Attrs()["units"], "degC")
}

func TestDataArrayIndexesRestrictedToOwnDims(t *testing.T) {
	t.Parallel()
	x := mustVariable(t, []string{"x"}, ndarray.OfInts(0, 1), nil)
	y := mustVariable(t, []string{"y"}, ndarray.OfInts(0, 1, 2), nil)
	overX := mustVariable(t, []string{"x"}, ndarray.OfFloats(5, 6), nil)
	ds, err := labeled.NewDataset(map[string]*labeled.Variable{"x": x, "y": y, "v": overX}, nil)
	assert.NilError(t, err)

	da := mustDataArray(t, "v", ds)
	indexes := da.Indexes()
	assert.Equal(t, len(indexes), 1)
	assert.Equal(t, indexes["x"], x, "the y index does not belong to an array over x only")
}

func TestDataArrayEquals(t *testing.T) {
	t.Parallel()
	d1 := makeDataset(t, map[string]any{"title": "a"}, nil)
	d2 := makeDataset(t, map[string]any{"title": "b"}, nil)
	a1 := mustDataArray(t, "temp", d1)
	a2 := mustDataArray(t, "temp", d2)
	// Same values and indexes, different dataset attrs: equal, not identical.
	assert.Assert(t, a1.Equals(a2))
	assert.Assert(t, !a1.Identical(a2))

	d3 := makeDataset(t, map[string]any{"title": "a"}, nil)
	a3 := mustDataArray(t, "temp", d3)
	assert.Assert(t, a1.Identical(a3))
}

func TestDataArrayIdenticalComparesWholeDataset(t *testing.T) {
	t.Parallel()
	d1 := makeDataset(t, nil, nil)

	// d2 additionally carries an unrelated variable: the bound variable and
	// its indexes agree, so the arrays are equal, but identity compares the
	// whole owning dataset and must fail.
	x := mustVariable(t, []string{"x"}, ndarray.OfInts(0, 1, 2), nil)
	temp := mustVariable(t, []string{"x"}, ndarray.OfFloats(11.2, 11.9, 12.4), nil)
	other := mustVariable(t, []string{"x"}, ndarray.OfFloats(0, 0, 0), nil)
	d2, err := labeled.NewDataset(map[string]*labeled.Variable{"x": x, "temp": temp, "other": other}, nil)
	assert.NilError(t, err)

	a1 := mustDataArray(t, "temp", d1)
	a2 := mustDataArray(t, "temp", d2)
	assert.Assert(t, a1.Equals(a2))
	assert.Assert(t, !a1.Identical(a2))
}

func TestDataArrayIdenticalNeedsSameName(t *testing.T) {
	t.Parallel()
	x := mustVariable(t, []string{"x"}, ndarray.OfInts(0, 1), nil)
	v := mustVariable(t, []string{"x"}, ndarray.OfFloats(1, 2), nil)
	ds, err := labeled.NewDataset(map[string]*labeled.Variable{"x": x, "a": v, "b": v}, nil)
	assert.NilError(t, err)
	a := mustDataArray(t, "a", ds)
	b := mustDataArray(t, "b", ds)
	assert.Assert(t, a.Equals(b))
	assert.Assert(t, !a.Identical(b))
}

func TestDataArrayAllClose(t *testing.T) {
	t.Parallel()
	d1 := makeDataset(t, nil, nil)
	x := mustVariable(t, []string{"x"}, ndarray.OfInts(0, 1, 2), nil)
	temp := mustVariable(t, []string{"x"}, ndarray.OfFloats(11.2, 11.9, 12.4+5e-6), nil)
	d2, err := labeled.NewDataset(map[string]*labeled.Variable{"x": x, "temp": temp}, nil)
	assert.NilError(t, err)

	a1 := mustDataArray(t, "temp", d1)
	a2 := mustDataArray(t, "temp", d2)
	assert.Assert(t, a1.AllClose(a2, ndarray.DefaultRTol, ndarray.DefaultATol))
	assert.Assert(t, !a1.AllClose(a2, 0, 1e-9))
}
