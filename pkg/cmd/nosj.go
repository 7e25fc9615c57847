// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	cmddec "carvel.dev/nosj/pkg/cmd/decode"
	"carvel.dev/nosj/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type NosjOptions struct{}

func NewDefaultNosjOptions() *NosjOptions {
	return &NosjOptions{}
}

func NewDefaultNosjCmd() *cobra.Command {
	return NewNosjCmd(NewDefaultNosjOptions())
}

func NewNosjCmd(o *NosjOptions) *cobra.Command {
	cmd := cmddec.NewCmd(cmddec.NewOptions())

	cmd.Use = "nosj"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "nosj decodes marshalled maps"
	cmd.Long = `nosj decodes a marshalled map file into a deterministic line-oriented event stream.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmddec.NewCmd(cmddec.NewOptions())) // also usable as explicit subcommand

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
