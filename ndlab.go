// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

// ndlab is a small labeled multi-dimensional array model and the comparison
// machinery that goes with it.
//
//   - [github.com/corvess/ndlab/ndarray] holds the raw array values.
//   - [github.com/corvess/ndlab/labeled] adds dimension names, attributes and
//     datasets, with the Equals / Identical / AllClose predicates.
//   - [github.com/corvess/ndlab/arrtest] is the test-support layer: one
//     assertion per entity and equality strength, plus backend-dependent
//     test skipping.
//   - [github.com/corvess/ndlab/fixtures] reads datasets from YAML, used by
//     the tests and by cmd/nddiff.
package ndlab
