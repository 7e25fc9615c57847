// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filetests houses a test harness for decoding marshalled map documents
and asserting the expected event stream.
*/
package filetests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carvel.dev/nosj/pkg/nosjmeta"
)

// DecodeInput is the processing desired from a source document to the final event stream.
type DecodeInput func(src string) (string, error)

// FileTests contain a suite of test cases, each described in a separate file, verifying the
// behavior of the decoder.
//
// Test cases:
// - are found within the directory at "PathToTests"
// - conventionally have a .nosjtest extension
// - top-half is the input document; bottom-half is the expected output; divided by `+++` and a blank line.
//
// Expected output starting with `ERR:` indicates that expected output is an error message;
// otherwise expected output is the literal event stream.
//
// For example:
//
//	(<a:1010>)
//	+++
//
//	begin-map
//	a -- num -- -6
//	end-map
type FileTests struct {
	PathToTests string
	DecodeFunc  DecodeInput
}

// Run runs each test: enumerates each file within FileTests.PathToTests, splits it on the
// separator, and decodes the top half using FileTests.DecodeFunc.
func (f FileTests) Run(t *testing.T) {
	var files []string

	err := filepath.Walk(f.PathToTests, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}

	if f.DecodeFunc == nil {
		f.DecodeFunc = f.DefaultDecode
	}

	for _, filePath := range files {
		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)

			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}
			expectedStr := pieces[1]

			result, decodeErr := f.DecodeFunc(pieces[0])

			if strings.HasPrefix(expectedStr, "ERR:") {
				if decodeErr == nil {
					err = fmt.Errorf("expected decode error, but did not receive it")
				} else {
					expectedStr = strings.TrimPrefix(expectedStr, "ERR:")
					expectedStr = strings.TrimPrefix(expectedStr, " ")
					expectedStr = TrimTrailingMultilineWhitespace(expectedStr)
					err = f.expectEquals(decodeErr.Error(), expectedStr)
				}
			} else {
				if decodeErr != nil {
					err = fmt.Errorf("decode error: %v", decodeErr)
				} else {
					err = f.expectEquals(result, expectedStr)
				}
			}

			if err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

func (f FileTests) expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		return fmt.Errorf("not equal\n\n### result %d chars:\n>>>%s<<<\n###expected %d chars:\n>>>%s<<<", len(resultStr), resultStr, len(expectedStr), expectedStr)
	}
	return nil
}

// DefaultDecode decodes the document "src" into its event stream.
func (f FileTests) DefaultDecode(src string) (string, error) {
	docMap, err := nosjmeta.NewParser(nosjmeta.ParserOpts{}).ParseBytes([]byte(src), "stdin.nosj")
	if err != nil {
		return "", err
	}

	return nosjmeta.NewPrinter(nil).PrintStr(docMap), nil
}

// TrimTrailingMultilineWhitespace returns a string with trailing whitespace trimmed from every line as well
// as trimmed trailing empty lines
func TrimTrailingMultilineWhitespace(s string) string {
	var trimmedLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmedLine := strings.TrimRight(line, "\t ")
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	multiline := strings.Join(trimmedLines, "\n")
	return strings.TrimRight(multiline, "\n")
}
