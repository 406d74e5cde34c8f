// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package ndarray

import (
	"bytes"
	"slices"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DecodeBytes turns a Bytes array into the String array holding the same
// logical text: trailing NUL padding is stripped and every ill-formed UTF-8
// sequence becomes U+FFFD, so decoding never fails. Any other kind is
// returned as-is without copying. Byte-string data read back from a file
// backend must compare equal to the text it was written from, which is only
// possible after both sides are decoded.
func DecodeBytes(a *Array) *Array {
	if a == nil || a.kind != KindBytes {
		return a
	}
	replace := runes.ReplaceIllFormed()
	out := make([]string, len(a.raw))
	for i, b := range a.raw {
		b = bytes.TrimRight(b, "\x00")
		decoded, _, _ := transform.Bytes(replace, b)
		out[i] = string(decoded)
	}
	return &Array{kind: KindString, shape: slices.Clone(a.shape), str: out}
}
