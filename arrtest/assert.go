// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package arrtest

import (
	"slices"
	"testing"

	"github.com/corvess/ndlab/labeled"
	"github.com/corvess/ndlab/ndarray"
	"github.com/corvess/ndlab/utils/sliceutils"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// AssertArrayEqual fails the test unless the two arrays are element-wise
// equivalent, NaN counting as equal to NaN.
func AssertArrayEqual(t testing.TB, x, y *ndarray.Array) {
	t.Helper()
	if !ndarray.Equiv(x, y) {
		t.Fatalf("arrays not equal:\n  x: %v\n  y: %v", x, y)
	}
}

// AssertVariableEqual fails the test unless the two operands are structurally
// equal variables: same ordered dimension names and equivalent values,
// attributes ignored. Operands may be anything coercible to a Variable, in
// particular a DataArray.
func AssertVariableEqual(t testing.TB, v1, v2 any) {
	t.Helper()
	a, b := coerce(t, v1), coerce(t, v2)
	if !a.Equals(b) {
		t.Fatalf("variables not equal:\n  v1: %v\n  v2: %v", a, b)
	}
}

// AssertVariableIdentical is [AssertVariableEqual] strengthened to
// attribute-mapping equivalence.
func AssertVariableIdentical(t testing.TB, v1, v2 any) {
	t.Helper()
	a, b := coerce(t, v1), coerce(t, v2)
	if !a.Identical(b) {
		t.Fatalf("variables not identical:\n  v1: %v\n  v2: %v", a, b)
	}
}

// AssertVariableNotEqual fails the test if the two operands are structurally
// equal variables.
func AssertVariableNotEqual(t testing.TB, v1, v2 any) {
	t.Helper()
	a, b := coerce(t, v1), coerce(t, v2)
	if a.Equals(b) {
		t.Fatalf("variables unexpectedly equal:\n  v1: %v\n  v2: %v", a, b)
	}
}

// AssertVariableAllClose fails the test unless the operands have exactly the
// same dimension names and their values are equivalent within tolerance,
// defaults rtol=1e-5 atol=1e-8. Byte-string values are decoded to text first
// and the exact kinds (string, time, duration, object) ignore the tolerance.
func AssertVariableAllClose(t testing.TB, v1, v2 any, opts ...Option) {
	t.Helper()
	a, b := coerce(t, v1), coerce(t, v2)
	tol := newTolerance(opts)
	if !slices.Equal(a.Dims(), b.Dims()) {
		t.Fatalf("dimensions not equal:\n  v1: %v\n  v2: %v", a.Dims(), b.Dims())
		return
	}
	if !ndarray.AllcloseOrEquiv(a.Data(), b.Data(), tol.RTol, tol.ATol) {
		t.Fatalf("values not all-close (rtol=%v atol=%v):\n  v1: %v\n  v2: %v",
			tol.RTol, tol.ATol, a.Data(), b.Data())
	}
}

// AssertDatasetEqual fails the test unless the two datasets hold the same
// variable names and every pair of same-named variables is structurally
// equal. This is d1.Equals(d2) pulled apart so the failure names the first
// aspect that differs instead of a bare boolean.
func AssertDatasetEqual(t testing.TB, d1, d2 *labeled.Dataset) {
	t.Helper()
	if !assertNamesEqual(t, "variable", d1.Names(), d2.Names()) {
		return
	}
	for _, name := range d1.Names() {
		v1, _ := d1.Var(name)
		v2, _ := d2.Var(name)
		if !v1.Equals(v2) {
			t.Fatalf("variable %q not equal:\n  d1: %v\n  d2: %v", name, v1, v2)
			return
		}
	}
}

// AssertDatasetIdentical fails the test unless the global attributes are
// equivalent, the variable names match and every pair of same-named
// variables is identical.
func AssertDatasetIdentical(t testing.TB, d1, d2 *labeled.Dataset) {
	t.Helper()
	if !labeled.AttrsEquiv(d1.Attrs(), d2.Attrs()) {
		t.Fatalf("dataset attrs not equal:\n%s", labeled.AttrsDiff(d1.Attrs(), d2.Attrs()))
		return
	}
	if !assertNamesEqual(t, "variable", d1.Names(), d2.Names()) {
		return
	}
	for _, name := range d1.Names() {
		v1, _ := d1.Var(name)
		v2, _ := d2.Var(name)
		if !v1.Identical(v2) {
			t.Fatalf("variable %q not identical:\n  d1: %v\n  d2: %v", name, v1, v2)
			return
		}
	}
}

// AssertDatasetAllClose fails the test unless the two datasets hold the same
// variable names and every pair of same-named variables is all-close.
func AssertDatasetAllClose(t testing.TB, d1, d2 *labeled.Dataset, opts ...Option) {
	t.Helper()
	if !assertNamesEqual(t, "variable", d1.Names(), d2.Names()) {
		return
	}
	for _, name := range d1.Names() {
		v1, _ := d1.Var(name)
		v2, _ := d2.Var(name)
		AssertVariableAllClose(t, v1, v2, opts...)
	}
}

// AssertIndexesEqual fails the test unless the two entities expose the same
// index names and every pair of same-named index variables is equal. Both
// Dataset and DataArray are Indexers.
func AssertIndexesEqual(t testing.TB, x1, x2 labeled.Indexer) {
	t.Helper()
	i1, i2 := x1.Indexes(), x2.Indexes()
	if !assertNamesEqual(t, "index", sliceutils.SortedKeys(i1), sliceutils.SortedKeys(i2)) {
		return
	}
	for name, v1 := range i1 {
		if !v1.Equals(i2[name]) {
			t.Fatalf("index %q not equal:\n  x1: %v\n  x2: %v", name, v1, i2[name])
			return
		}
	}
}

// AssertDataArrayEqual fails the test unless the two arrays hold equal
// variables and equal indexes.
func AssertDataArrayEqual(t testing.TB, a1, a2 *labeled.DataArray) {
	t.Helper()
	AssertVariableEqual(t, a1, a2)
	AssertIndexesEqual(t, a1, a2)
}

// AssertDataArrayIdentical fails the test unless both arrays are bound to
// the same name and their owning datasets are identical.
func AssertDataArrayIdentical(t testing.TB, a1, a2 *labeled.DataArray) {
	t.Helper()
	if a1.Name() != a2.Name() {
		t.Fatalf("data array names not equal: %q != %q", a1.Name(), a2.Name())
		return
	}
	AssertDatasetIdentical(t, a1.Dataset(), a2.Dataset())
}

// AssertDataArrayAllClose fails the test unless the two arrays hold
// all-close variables and equal indexes.
func AssertDataArrayAllClose(t testing.TB, a1, a2 *labeled.DataArray, opts ...Option) {
	t.Helper()
	AssertVariableAllClose(t, a1, a2, opts...)
	AssertIndexesEqual(t, a1, a2)
}

// AssertItemsEqual fails the test unless the two slices hold the same items,
// in any order.
func AssertItemsEqual[S ~[]E, E constraints.Ordered](t testing.TB, x, y S) {
	t.Helper()
	xs, ys := slices.Clone(x), slices.Clone(y)
	slices.Sort(xs)
	slices.Sort(ys)
	if !slices.Equal(xs, ys) {
		t.Fatalf("items not equal ignoring order:\n  x: %v\n  y: %v", x, y)
	}
}

func assertNamesEqual(t testing.TB, what string, n1, n2 []string) bool {
	t.Helper()
	if slices.Equal(n1, n2) {
		return true
	}
	t.Fatalf("%s name sets differ:\n%s", what, cmp.Diff(n1, n2))
	return false
}
