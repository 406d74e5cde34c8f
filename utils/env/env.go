// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

//nolint:stylecheck
package env

import (
	"os"
	"strings"
)

// NDLAB_FORCE_BACKENDS lists backend names (comma separated) which should be
// treated as available without probing for their tools.
func NDLAB_FORCE_BACKENDS() []string {
	return split(os.Getenv("NDLAB_FORCE_BACKENDS"))
}

// NDLAB_DISABLE_BACKENDS lists backend names (comma separated) which should
// be treated as unavailable even when their tools are installed.
func NDLAB_DISABLE_BACKENDS() []string {
	return split(os.Getenv("NDLAB_DISABLE_BACKENDS"))
}

func split(str string) []string {
	if str == "" {
		return nil
	}
	parts := strings.Split(str, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
