// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

package arrtest

import (
	"testing"

	"github.com/corvess/ndlab/fixtures"
	"github.com/corvess/ndlab/labeled"
	"gotest.tools/v3/assert"
)

// GetDatasetFromFile reads a YAML dataset fixture, failing the test on any
// read or parse error.
func GetDatasetFromFile(t *testing.T, fileName string) *labeled.Dataset {
	t.Helper()
	d, err := fixtures.Load(fileName)
	assert.NilError(t, err)
	return d
}
