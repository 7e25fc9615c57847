// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the semver release tag; overridden via ldflags at build time.
var Version = "0.1.0"
