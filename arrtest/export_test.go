// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package arrtest

// SwapProbe replaces the named backend's probe with a fresh un-memoized
// entry, so tests can simulate a backend being present or absent. The
// returned func restores the original entry, memoized state included.
func SwapProbe(name string, probe func() bool) (restore func()) {
	old := backends[name]
	backends[name] = &backend{name: name, probe: probe}
	return func() { backends[name] = old }
}
