// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package nosjmeta

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
)

// Printer renders a decoded map as the line-oriented event stream: one line
// per event, depth-first, exactly the order the parser visited entries in.
type Printer struct {
	writer io.Writer
}

func NewPrinter(writer io.Writer) Printer {
	return Printer{writer}
}

func (p Printer) Print(m *Map) {
	fmt.Fprintf(p.writer, "%s", p.PrintStr(m))
}

func (p Printer) PrintStr(m *Map) string {
	buf := new(bytes.Buffer)
	p.print(m, buf)
	return buf.String()
}

func (p Printer) print(m *Map, writer io.Writer) {
	fmt.Fprintf(writer, "begin-map\n")

	for _, item := range m.Items {
		switch typedVal := item.Value.(type) {
		case *Map:
			// trailing space after the separator is part of the format
			fmt.Fprintf(writer, "%s -- map -- \n", item.Key)
			p.print(typedVal, writer)

		case *big.Int:
			fmt.Fprintf(writer, "%s -- num -- %s\n", item.Key, typedVal.String())

		case string:
			fmt.Fprintf(writer, "%s -- string -- %s\n", item.Key, typedVal)

		default:
			panic(fmt.Sprintf("Unexpected value type %T in decoded map", item.Value))
		}
	}

	fmt.Fprintf(writer, "end-map\n")
}

// DebugPrinter dumps the decoded tree with byte offsets; used for --debug
// output, never for the success channel.
type DebugPrinter struct {
	writer io.Writer
}

func NewDebugPrinter(writer io.Writer) DebugPrinter {
	return DebugPrinter{writer}
}

func (p DebugPrinter) Print(m *Map) {
	p.print(m, "")
}

func (p DebugPrinter) print(val interface{}, indent string) {
	const indentLvl = "    "

	switch typedVal := val.(type) {
	case *Map:
		fmt.Fprintf(p.writer, "%s%s: map\n", indent, typedVal.Position.As4DigitString())

		for _, item := range typedVal.Items {
			fmt.Fprintf(p.writer, "%s%s: key=%s\n", indent, item.Position.As4DigitString(), item.Key)
			p.print(item.Value, indent+indentLvl)
		}

	default:
		fmt.Fprintf(p.writer, "%s: %v\n", indent, typedVal)
	}
}
