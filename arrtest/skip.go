// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package arrtest

import (
	"os/exec"
	"slices"
	"sync"
	"testing"

	"github.com/corvess/ndlab/utils/env"
)

// The optional numeric backends a test may depend on. None of them are
// required to build or test the module itself, a missing backend only skips
// the tests that need it.
const (
	BackendNetCDF  = "netcdf"
	BackendHDF5    = "hdf5"
	BackendOpenDAP = "opendap"
)

type backend struct {
	name  string
	probe func() bool
	once  sync.Once
	ok    bool
}

// Each backend is detected by looking for its command line tool on PATH,
// overridable either way with NDLAB_FORCE_BACKENDS / NDLAB_DISABLE_BACKENDS.
var backends = map[string]*backend{
	BackendNetCDF:  {name: BackendNetCDF, probe: toolProbe("ncdump")},
	BackendHDF5:    {name: BackendHDF5, probe: toolProbe("h5dump")},
	BackendOpenDAP: {name: BackendOpenDAP, probe: toolProbe("getdap")},
}

func toolProbe(tool string) func() bool {
	return func() bool {
		_, err := exec.LookPath(tool)
		return err == nil
	}
}

func (b *backend) resolve() bool {
	if slices.Contains(env.NDLAB_FORCE_BACKENDS(), b.name) {
		return true
	}
	if slices.Contains(env.NDLAB_DISABLE_BACKENDS(), b.name) {
		return false
	}
	return b.probe()
}

// HasBackend reports whether the named optional backend is usable. The probe
// runs at most once per process, its answer is memoized; a failed probe is
// an unavailable backend, never an error.
func HasBackend(name string) bool {
	b, ok := backends[name]
	if !ok {
		return false
	}
	b.once.Do(func() { b.ok = b.resolve() })
	return b.ok
}

// RequiresNetCDF skips the test when the netCDF backend is unavailable.
func RequiresNetCDF(t testing.TB) {
	t.Helper()
	requires(t, BackendNetCDF)
}

// RequiresHDF5 skips the test when the HDF5 backend is unavailable.
func RequiresHDF5(t testing.TB) {
	t.Helper()
	requires(t, BackendHDF5)
}

// RequiresOpenDAP skips the test when the OPeNDAP backend is unavailable.
func RequiresOpenDAP(t testing.TB) {
	t.Helper()
	requires(t, BackendOpenDAP)
}

func requires(t testing.TB, name string) {
	t.Helper()
	if !HasBackend(name) {
		t.Skipf("requires %s", name)
	}
}
