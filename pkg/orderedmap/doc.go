// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation that preserves insertion
order; decoded marshalled maps keep their entry order through re-encoding.
*/
package orderedmap
