// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	cmdcore "carvel.dev/nosj/pkg/cmd/core"
	"carvel.dev/nosj/pkg/files"
	"carvel.dev/nosj/pkg/nosjmeta"
	"carvel.dev/nosj/pkg/orderedmap"
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

type Options struct {
	Debug        bool
	MaxDepth     int
	OutputFormat string
}

type Input struct {
	Files []*files.File
}

type Output struct {
	DocMap *nosjmeta.Map
	Err    error
}

func NewOptions() *Options {
	return &Options{OutputFormat: "events"}
}

func NewCmd(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode file.nosj",
		Short: "Decode one marshalled map into its event stream",
		// arg count is validated in Run so that the diagnostic stays "missing input file"
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.Flags().IntVar(&o.MaxDepth, "max-depth", 0, "Maximum map nesting depth (0 uses the default of 1024)")
	cmd.Flags().StringVarP(&o.OutputFormat, "output", "o", "events", "Output format (events, json, toml)")
	return cmd
}

func (o *Options) Run(args []string) error {
	ui := cmdcore.NewPlainUI(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	if len(args) != 1 {
		return fmt.Errorf("missing input file")
	}

	filesToProcess, err := files.NewFiles(args)
	if err != nil {
		return err
	}

	out := o.RunWithInput(Input{Files: filesToProcess}, ui)
	if out.Err != nil {
		return out.Err
	}

	return o.WriteOutput(out.DocMap, ui)
}

// RunWithInput decodes exactly one input into its map tree. Nothing is
// written to the success channel here: a parse failure must produce no
// output at all.
func (o *Options) RunWithInput(in Input, ui files.UI) Output {
	if len(in.Files) != 1 {
		return Output{Err: fmt.Errorf("missing input file")}
	}

	file := in.Files[0]

	data, err := file.Bytes()
	if err != nil {
		return Output{Err: err}
	}

	docMap, err := nosjmeta.NewParser(nosjmeta.ParserOpts{MaxDepth: o.MaxDepth}).ParseBytes(data, file.RelativePath())
	if err != nil {
		return Output{Err: err}
	}

	nosjmeta.NewDebugPrinter(ui.DebugWriter()).Print(docMap)

	return Output{DocMap: docMap}
}

func (o *Options) WriteOutput(docMap *nosjmeta.Map, ui files.UI) error {
	switch o.OutputFormat {
	case "events":
		ui.Printf("%s", nosjmeta.NewPrinter(nil).PrintStr(docMap))
		return nil

	case "json":
		bs, err := json.Marshal(docMap.AsPlain())
		if err != nil {
			return err
		}
		ui.Printf("%s\n", bs)
		return nil

	case "toml":
		buf := new(bytes.Buffer)
		plainMap := orderedmap.Conversion{Object: docMap.AsPlain()}.AsUnorderedStringMaps()
		err := toml.NewEncoder(buf).Encode(plainMap)
		if err != nil {
			return err
		}
		ui.Printf("%s", buf.String())
		return nil

	default:
		return fmt.Errorf("Unknown output format '%s'", o.OutputFormat)
	}
}
