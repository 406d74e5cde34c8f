// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

// Package ndarray holds the plain N-dimensional array values which the
// labeled types are built on top of. An [Array] is a shape plus flat
// row-major storage of a single element [Kind]; slicing and reshaping
// produce views which share that storage with the array they came from.
package ndarray

import (
	"fmt"
	"slices"
	"time"

	"github.com/corvess/ndlab/utils/errors"
)

// Kind classifies the elements an [Array] holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindFloat is 64-bit floating point, NaN is the missing-value marker.
	KindFloat
	// KindInt is 64-bit signed integer.
	KindInt
	// KindBytes is fixed-width byte strings, the undecoded form of text data
	// as it comes out of file backends.
	KindBytes
	// KindString is unicode text.
	KindString
	KindTime
	KindDuration
	// KindObject is a catch-all for heterogeneous elements.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindDuration:
		return "duration"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Exact reports whether k is compared element-for-element even when a caller
// asked for a tolerance, i.e. a tolerance makes no sense for this kind.
func (k Kind) Exact() bool {
	return k == KindString || k == KindTime || k == KindDuration || k == KindObject
}

// Numeric reports whether k supports tolerance-based comparison.
func (k Kind) Numeric() bool {
	return k == KindFloat || k == KindInt
}

// Array is an N-dimensional value: a shape and flat row-major storage of a
// single element kind. Arrays are read-only once built, every operation on
// them either returns a fresh array or a view sharing the same storage.
type Array struct {
	kind  Kind
	shape []int

	f64   []float64
	i64   []int64
	raw   [][]byte
	str   []string
	times []time.Time
	durs  []time.Duration
	objs  []any

	// base is nil when this array owns its storage, otherwise it points at
	// the array the storage was borrowed from.
	base *Array
}

func size(shape []int) (int, error) {
	n := 1
	for _, dim := range shape {
		if dim < 0 {
			return 0, errors.Errorf("ndarray: negative dimension length %d in shape %v", dim, shape)
		}
		n *= dim
	}
	return n, nil
}

func newArray(kind Kind, shape []int, length int) (*Array, error) {
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	if n != length {
		return nil, errors.Errorf("ndarray: shape %v wants %d elements, have %d", shape, n, length)
	}
	return &Array{kind: kind, shape: slices.Clone(shape)}, nil
}

// NewFloats builds a Float array of the given shape from flat row-major values.
func NewFloats(shape []int, values []float64) (*Array, error) {
	a, err := newArray(KindFloat, shape, len(values))
	if err != nil {
		return nil, err
	}
	a.f64 = values
	return a, nil
}

// NewInts builds an Int array of the given shape from flat row-major values.
func NewInts(shape []int, values []int64) (*Array, error) {
	a, err := newArray(KindInt, shape, len(values))
	if err != nil {
		return nil, err
	}
	a.i64 = values
	return a, nil
}

// NewBytes builds a Bytes array of the given shape from flat row-major values.
func NewBytes(shape []int, values [][]byte) (*Array, error) {
	a, err := newArray(KindBytes, shape, len(values))
	if err != nil {
		return nil, err
	}
	a.raw = values
	return a, nil
}

// NewStrings builds a String array of the given shape from flat row-major values.
func NewStrings(shape []int, values []string) (*Array, error) {
	a, err := newArray(KindString, shape, len(values))
	if err != nil {
		return nil, err
	}
	a.str = values
	return a, nil
}

// NewTimes builds a Time array of the given shape from flat row-major values.
func NewTimes(shape []int, values []time.Time) (*Array, error) {
	a, err := newArray(KindTime, shape, len(values))
	if err != nil {
		return nil, err
	}
	a.times = values
	return a, nil
}

// NewDurations builds a Duration array of the given shape from flat row-major values.
func NewDurations(shape []int, values []time.Duration) (*Array, error) {
	a, err := newArray(KindDuration, shape, len(values))
	if err != nil {
		return nil, err
	}
	a.durs = values
	return a, nil
}

// NewObjects builds an Object array of the given shape from flat row-major values.
func NewObjects(shape []int, values []any) (*Array, error) {
	a, err := newArray(KindObject, shape, len(values))
	if err != nil {
		return nil, err
	}
	a.objs = values
	return a, nil
}

// OfFloats is the 1-d shorthand for [NewFloats].
func OfFloats(values ...float64) *Array {
	return &Array{kind: KindFloat, shape: []int{len(values)}, f64: values}
}

// OfInts is the 1-d shorthand for [NewInts].
func OfInts(values ...int64) *Array {
	return &Array{kind: KindInt, shape: []int{len(values)}, i64: values}
}

// OfBytes is the 1-d shorthand for [NewBytes].
func OfBytes(values ...[]byte) *Array {
	return &Array{kind: KindBytes, shape: []int{len(values)}, raw: values}
}

// OfStrings is the 1-d shorthand for [NewStrings].
func OfStrings(values ...string) *Array {
	return &Array{kind: KindString, shape: []int{len(values)}, str: values}
}

// OfTimes is the 1-d shorthand for [NewTimes].
func OfTimes(values ...time.Time) *Array {
	return &Array{kind: KindTime, shape: []int{len(values)}, times: values}
}

// OfDurations is the 1-d shorthand for [NewDurations].
func OfDurations(values ...time.Duration) *Array {
	return &Array{kind: KindDuration, shape: []int{len(values)}, durs: values}
}

// OfObjects is the 1-d shorthand for [NewObjects].
func OfObjects(values ...any) *Array {
	return &Array{kind: KindObject, shape: []int{len(values)}, objs: values}
}

func (a *Array) Kind() Kind { return a.kind }

// Shape returns a copy of the array's dimension lengths.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// NDim is the number of axes.
func (a *Array) NDim() int { return len(a.shape) }

// Len is the total element count.
func (a *Array) Len() int {
	n := 1
	for _, dim := range a.shape {
		n *= dim
	}
	return n
}

// Base returns the array which owns this array's backing storage: the array
// it was sliced or reshaped from, or a itself when it owns storage directly.
// Two arrays alias the same buffer exactly when their bases are identical.
func (a *Array) Base() *Array {
	if a.base != nil {
		return a.base
	}
	return a
}

// Slice returns the view a[i:j] along the first axis. The result shares
// storage with a, its [Array.Base] is a's base.
func (a *Array) Slice(i, j int) (*Array, error) {
	if a.NDim() == 0 {
		return nil, errors.New("ndarray: cannot slice a 0-d array")
	}
	if i < 0 || j < i || j > a.shape[0] {
		return nil, errors.Errorf("ndarray: slice [%d:%d] out of range for axis of length %d", i, j, a.shape[0])
	}
	row := 1
	for _, dim := range a.shape[1:] {
		row *= dim
	}
	shape := slices.Clone(a.shape)
	shape[0] = j - i
	v := &Array{kind: a.kind, shape: shape, base: a.Base()}
	lo, hi := i*row, j*row
	switch a.kind {
	case KindFloat:
		v.f64 = a.f64[lo:hi]
	case KindInt:
		v.i64 = a.i64[lo:hi]
	case KindBytes:
		v.raw = a.raw[lo:hi]
	case KindString:
		v.str = a.str[lo:hi]
	case KindTime:
		v.times = a.times[lo:hi]
	case KindDuration:
		v.durs = a.durs[lo:hi]
	case KindObject:
		v.objs = a.objs[lo:hi]
	}
	return v, nil
}

// Reshape returns a view of a with the new shape, which must describe the
// same number of elements. The result shares storage with a.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	n, err := size(shape)
	if err != nil {
		return nil, err
	}
	if n != a.Len() {
		return nil, errors.Errorf("ndarray: cannot reshape %d elements into %v", a.Len(), shape)
	}
	v := &Array{
		kind:  a.kind,
		shape: slices.Clone(shape),
		base:  a.Base(),
		f64:   a.f64,
		i64:   a.i64,
		raw:   a.raw,
		str:   a.str,
		times: a.times,
		durs:  a.durs,
		objs:  a.objs,
	}
	return v, nil
}

// At returns the element at flat row-major index i.
func (a *Array) At(i int) any {
	switch a.kind {
	case KindFloat:
		return a.f64[i]
	case KindInt:
		return a.i64[i]
	case KindBytes:
		return a.raw[i]
	case KindString:
		return a.str[i]
	case KindTime:
		return a.times[i]
	case KindDuration:
		return a.durs[i]
	case KindObject:
		return a.objs[i]
	default:
		panic(fmt.Sprintf("ndarray: At on invalid array kind %d", a.kind))
	}
}

// values returns the active storage slice, for printing and object-kind
// comparison only.
func (a *Array) values() any {
	switch a.kind {
	case KindFloat:
		return a.f64
	case KindInt:
		return a.i64
	case KindBytes:
		return a.raw
	case KindString:
		return a.str
	case KindTime:
		return a.times
	case KindDuration:
		return a.durs
	case KindObject:
		return a.objs
	default:
		return nil
	}
}

// floats returns the element values widened to float64, only possible for the
// numeric kinds.
func (a *Array) floats() ([]float64, bool) {
	switch a.kind {
	case KindFloat:
		return a.f64, true
	case KindInt:
		out := make([]float64, len(a.i64))
		for i, v := range a.i64 {
			out[i] = float64(v)
		}
		return out, true
	default:
		return nil, false
	}
}

func (a *Array) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%v%v", a.kind, a.shape, a.values())
}
