// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a
file) and a byte offset within that source.

Marshalled map input is a single line-less blob, so positions are tracked as
byte offsets rather than line numbers. Positions are attached to parsed nodes
and surface in debug output.

Not all Position point within a source (e.g. nodes built in tests). The
zero-value of Position (can be created using NewUnknownPosition()) represents
this case.
*/
package filepos
