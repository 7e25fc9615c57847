// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package nosjmeta_test

import (
	"bytes"
	"math/big"
	"testing"

	"carvel.dev/nosj/pkg/filepos"
	"carvel.dev/nosj/pkg/nosjmeta"
)

func TestPrinterEvents(t *testing.T) {
	docMap := &nosjmeta.Map{
		Items: []*nosjmeta.MapItem{
			{Key: "a", Value: big.NewInt(-6)},
			{Key: "b", Value: "hi there"},
			{Key: "x", Value: &nosjmeta.Map{
				Items: []*nosjmeta.MapItem{
					{Key: "y", Value: big.NewInt(127)},
				},
			}},
		},
	}

	expected := "begin-map\n" +
		"a -- num -- -6\n" +
		"b -- string -- hi there\n" +
		"x -- map -- \n" + // note the trailing space
		"begin-map\n" +
		"y -- num -- 127\n" +
		"end-map\n" +
		"end-map\n"

	assertEqual(t, nosjmeta.NewPrinter(nil).PrintStr(docMap), expected)

	buf := new(bytes.Buffer)
	nosjmeta.NewPrinter(buf).Print(docMap)
	assertEqual(t, buf.String(), expected)
}

func TestPrinterEmptyMap(t *testing.T) {
	assertEqual(t, nosjmeta.NewPrinter(nil).PrintStr(&nosjmeta.Map{}), "begin-map\nend-map\n")
}

func TestDebugPrinter(t *testing.T) {
	inner := &nosjmeta.Map{
		Items: []*nosjmeta.MapItem{
			{Key: "y", Value: big.NewInt(3), Position: filepos.NewPosition(11)},
		},
		Position: filepos.NewPosition(9),
	}
	docMap := &nosjmeta.Map{
		Items: []*nosjmeta.MapItem{
			{Key: "a", Value: "bc", Position: filepos.NewPosition(2)},
			{Key: "x", Value: inner, Position: filepos.NewPosition(7)},
		},
		Position: filepos.NewPosition(0),
	}

	buf := new(bytes.Buffer)
	nosjmeta.NewDebugPrinter(buf).Print(docMap)

	expected := "   0: map\n" +
		"   2: key=a\n" +
		"    : bc\n" +
		"   7: key=x\n" +
		"       9: map\n" +
		"      11: key=y\n" +
		"        : 3\n"

	assertEqual(t, buf.String(), expected)
}
