// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package nosjmeta_test

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
	"testing"

	"carvel.dev/nosj/pkg/nosjmeta"
	fuzz "github.com/google/gofuzz"
)

type entrySeed struct {
	Num    bool
	NumVal int64
	StrVal string
}

// simple-string payload alphabet
const seedAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 \t"

func (s entrySeed) simpleString() string {
	if len(s.StrVal) == 0 {
		return "x"
	}
	out := make([]byte, len(s.StrVal))
	for i, b := range []byte(s.StrVal) {
		out[i] = seedAlphabet[int(b)%len(seedAlphabet)]
	}
	return string(out)
}

func TestParserFuzzRoundTrip(t *testing.T) {
	f := fuzz.New().NumElements(0, 8)

	for i := 0; i < 200; i++ {
		var seeds []entrySeed
		f.Fuzz(&seeds)

		var pairs []string
		expected := []string{"begin-map"}

		for j, seed := range seeds {
			key := strings.Repeat("a", j+1)
			if seed.Num {
				pairs = append(pairs, fmt.Sprintf("%s:%s", key, encodeTwosComplement(seed.NumVal)))
				expected = append(expected, fmt.Sprintf("%s -- num -- %d", key, seed.NumVal))
			} else {
				str := seed.simpleString()
				pairs = append(pairs, fmt.Sprintf("%s:%ss", key, str))
				expected = append(expected, fmt.Sprintf("%s -- string -- %s", key, str))
			}
		}
		expected = append(expected, "end-map")

		data := "(<" + strings.Join(pairs, ",") + ">)"

		docMap, err := nosjmeta.NewParser(nosjmeta.ParserOpts{}).ParseBytes([]byte(data), "")
		if err != nil {
			t.Fatalf("data %q: error: %s", data, err)
		}

		assertEqual(t, nosjmeta.NewPrinter(nil).PrintStr(docMap), strings.Join(expected, "\n")+"\n")
	}
}

// encodeTwosComplement renders v in the minimal width that keeps the sign
// bit correct, with one extra leading zero for non-negative values.
func encodeTwosComplement(v int64) string {
	if v >= 0 {
		return "0" + strconv.FormatInt(v, 2)
	}
	width := bits.Len64(uint64(^v)) + 1
	mask := ^uint64(0) >> (64 - width)
	return strconv.FormatUint(uint64(v)&mask, 2)
}

func TestParserFuzzNoPanic(t *testing.T) {
	f := fuzz.New().NumElements(0, 64)

	for i := 0; i < 500; i++ {
		var data []byte
		f.Fuzz(&data)

		docMap, err := nosjmeta.NewParser(nosjmeta.ParserOpts{}).ParseBytes(data, "")
		if err == nil && docMap == nil {
			t.Fatalf("data %q: no error and no map", data)
		}
	}
}
