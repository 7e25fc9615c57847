// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package decode implements the decode command: read exactly one marshalled
map (local file, stdin via "-", or HTTP URL), parse it, and write the
event-stream rendering (or a json/toml re-encoding) to standard output.
*/
package decode
