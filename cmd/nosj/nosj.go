// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"carvel.dev/nosj/pkg/cmd"
	uierrs "github.com/cppforlife/go-cli-ui/errors"
)

// failureExitCode is the status consumers check for; any failure, grammar
// or I/O, reports through the same single diagnostic line and this code.
const failureExitCode = 66

func main() {
	command := cmd.NewDefaultNosjCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR -- %s\n", uierrs.NewMultiLineError(err))
		os.Exit(failureExitCode)
	}
}
