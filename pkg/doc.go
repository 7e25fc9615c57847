// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of nosj.

From top-down, nosj code is layered in this way:

# Entry Point

nosj is built into a single command-line tool:

	./cmd/nosj

# Commands

The command tree is small: the root command is the "decode" command, with
"version" alongside it.

	pkg/cmd
	pkg/cmd/decode
	pkg/cmd/core

# Input

Inputs are resolved through a small file abstraction so that local files,
stdin, and HTTP URLs all present the same surface to the decoder.

	pkg/files

# Decoding

At the heart of nosj is parsing the marshalled map format into a positioned
tree and rendering that tree as an event stream (or re-encoding it as JSON
or TOML).

	pkg/nosjmeta

# Utilities

The remainder are domain-agnostic utilities:

	pkg/filepos
	pkg/orderedmap
	pkg/version
*/
package pkg
