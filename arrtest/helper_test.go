// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package arrtest_test

import (
	"fmt"
	"testing"
)

// recorder stands in for *testing.T so the assertions' failure and skip
// paths can themselves be asserted on. Fatalf cannot stop the goroutine the
// way a real test does, which is why every assertion returns straight after
// its first Fatalf.
type recorder struct {
	testing.TB
	failed  bool
	skipped bool
	log     string
}

func record(t *testing.T) *recorder { return &recorder{TB: t} }

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.log += fmt.Sprintf(format, args...)
}

func (r *recorder) Skipf(format string, args ...any) {
	r.skipped = true
	r.log += fmt.Sprintf(format, args...)
}
