// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of nosj's "commands" -- instances of
cobra.Command (not to be confused with ./cmd which contains the bootstrapping
for executing nosj as a command-line tool).

The default command is "decode".
*/
package cmd
