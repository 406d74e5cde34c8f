// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package labeled

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var attrOpts = []cmp.Option{
	// NaN is a legitimate "no value" attribute, it must compare equal to
	// itself or attribute equivalence stops being reflexive.
	cmp.Comparer(func(x, y float64) bool {
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	}),
	cmpopts.EquateEmpty(),
}

// AttrsEquiv reports deep equality of two attribute mappings, treating nil
// and empty collections as the same and NaN values as self-equal. Attribute
// values are expected to be plain data (scalars, strings, slices, nested
// maps), the kind of thing a file backend can round-trip.
func AttrsEquiv(a, b map[string]any) bool {
	return cmp.Equal(a, b, attrOpts...)
}

// AttrsDiff renders a human-readable diff of two attribute mappings, empty
// when they are equivalent.
func AttrsDiff(a, b map[string]any) string {
	return cmp.Diff(a, b, attrOpts...)
}
