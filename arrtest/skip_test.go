// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package arrtest_test

import (
	"testing"

	"github.com/corvess/ndlab/arrtest"
	"gotest.tools/v3/assert"
)

func TestRequiresSkipsWhenBackendMissing(t *testing.T) {
	restore := arrtest.SwapProbe(arrtest.BackendNetCDF, func() bool { return false })
	defer restore()

	r := record(t)
	arrtest.RequiresNetCDF(r)
	assert.Assert(t, r.skipped, "a missing backend must skip, not fail")
	assert.Assert(t, !r.failed)
	assert.Equal(t, r.log, "requires netcdf")
}

func TestRequiresPassesWhenBackendPresent(t *testing.T) {
	restore := arrtest.SwapProbe(arrtest.BackendHDF5, func() bool { return true })
	defer restore()

	r := record(t)
	arrtest.RequiresHDF5(r)
	assert.Assert(t, !r.skipped)
	assert.Assert(t, !r.failed)
}

func TestHasBackendMemoizesProbe(t *testing.T) {
	calls := 0
	restore := arrtest.SwapProbe(arrtest.BackendOpenDAP, func() bool {
		calls++
		return true
	})
	defer restore()

	for range 3 {
		assert.Assert(t, arrtest.HasBackend(arrtest.BackendOpenDAP))
	}
	assert.Equal(t, calls, 1, "the probe must run once per process, not once per query")
}

func TestHasBackendUnknownName(t *testing.T) {
	t.Parallel()
	assert.Assert(t, !arrtest.HasBackend("fortran"))
}

func TestBackendEnvOverrides(t *testing.T) {
	probed := false
	restore := arrtest.SwapProbe(arrtest.BackendNetCDF, func() bool {
		probed = true
		return false
	})
	defer restore()

	t.Setenv("NDLAB_FORCE_BACKENDS", "netcdf")
	assert.Assert(t, arrtest.HasBackend(arrtest.BackendNetCDF))
	assert.Assert(t, !probed, "a forced backend must not be probed")

	restore2 := arrtest.SwapProbe(arrtest.BackendHDF5, func() bool { return true })
	defer restore2()
	t.Setenv("NDLAB_DISABLE_BACKENDS", "hdf5")
	assert.Assert(t, !arrtest.HasBackend(arrtest.BackendHDF5))
}
