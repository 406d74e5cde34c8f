// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package ndarray

import (
	"bytes"
	"math"
	"reflect"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Default tolerances for [AllcloseOrEquiv].
const (
	DefaultRTol = 1e-5
	DefaultATol = 1e-8
)

// Equiv reports element-wise equivalence of two arrays: shapes must match
// exactly and at every position either both sides hold the same value or both
// hold a missing-value marker (NaN for the float kinds). This is an
// equivalence relation, not strict equality, NaN compares equal to NaN.
func Equiv(a, b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !slices.Equal(a.shape, b.shape) {
		return false
	}
	if a.kind == KindFloat || b.kind == KindFloat {
		x, xok := a.floats()
		y, yok := b.floats()
		return xok && yok && floats.Same(x, y)
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return slices.Equal(a.i64, b.i64)
	case KindBytes:
		return slices.EqualFunc(a.raw, b.raw, bytes.Equal)
	case KindString:
		return slices.Equal(a.str, b.str)
	case KindTime:
		return slices.EqualFunc(a.times, b.times, time.Time.Equal)
	case KindDuration:
		return slices.Equal(a.durs, b.durs)
	case KindObject:
		return slices.EqualFunc(a.objs, b.objs, equivValue)
	default:
		return false
	}
}

func equivValue(x, y any) bool {
	xf, xok := x.(float64)
	yf, yok := y.(float64)
	if xok && yok {
		return xf == yf || (math.IsNaN(xf) && math.IsNaN(yf))
	}
	return reflect.DeepEqual(x, y)
}

// AllcloseOrEquiv decides whether two arrays hold equivalent data, picking
// the comparison by element kind:
//
//   - Bytes operands are first decoded to text through [DecodeBytes].
//   - Exact kinds (string, time, duration, object) are compared with [Equiv],
//     tolerances do not apply to them.
//   - Numeric kinds compare element-wise under |x-y| <= atol + rtol*|y|,
//     with a NaN on both sides counting as equivalent. Shapes must match,
//     there is no broadcasting.
func AllcloseOrEquiv(a, b *Array, rtol, atol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind == KindBytes || b.kind == KindBytes {
		a, b = DecodeBytes(a), DecodeBytes(b)
	}
	if a.kind.Exact() || b.kind.Exact() {
		return Equiv(a, b)
	}
	if !slices.Equal(a.shape, b.shape) {
		return false
	}
	x, xok := a.floats()
	y, yok := b.floats()
	if !xok || !yok {
		return false
	}
	for i := range x {
		xn, yn := math.IsNaN(x[i]), math.IsNaN(y[i])
		if xn || yn {
			if xn && yn {
				continue
			}
			return false
		}
		if math.IsInf(x[i], 0) || math.IsInf(y[i], 0) {
			if x[i] != y[i] {
				return false
			}
			continue
		}
		if math.Abs(x[i]-y[i]) > atol+rtol*math.Abs(y[i]) {
			return false
		}
	}
	return true
}
