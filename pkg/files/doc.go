// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for loading marshalled map input from
various file or file-like Source's (local path, stdin, HTTP URL, in-memory
bytes).

This keeps the decoder free of the details of how input bytes are obtained;
the parse itself always sees one fully materialized blob.
*/
package files
