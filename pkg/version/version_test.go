// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version_test

import (
	"testing"

	"carvel.dev/nosj/pkg/version"
	semver "github.com/hashicorp/go-version"
)

func TestVersionIsSemver(t *testing.T) {
	parsed, err := semver.NewSemver(version.Version)
	if err != nil {
		t.Fatalf("Version %q is not valid semver: %s", version.Version, err)
	}

	min := semver.Must(semver.NewSemver("0.1.0"))
	if parsed.LessThan(min) {
		t.Fatalf("Version %q is older than %s", version.Version, min)
	}
}
