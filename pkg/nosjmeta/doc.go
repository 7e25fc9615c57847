// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package nosjmeta parses marshalled map ("nosj") text into a tree of
nosjmeta.Node's and renders that tree as a deterministic, line-oriented
event stream.
*/
package nosjmeta
