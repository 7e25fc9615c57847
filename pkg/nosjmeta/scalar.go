// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package nosjmeta

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// DecodeScalar classifies a raw value token and decodes it. Classification
// follows a strict precedence so that a token resolves to exactly one kind:
//
//  1. token contains '%': must be a complex string
//  2. token contains a space or tab: must be a simple string
//  3. otherwise: num if the token is all '0'/'1', else simple string
//
// Nums decode to *big.Int (width is determined by the token length, so the
// value is unbounded); both string kinds decode to string.
func DecodeScalar(token string) (interface{}, error) {
	if strings.Contains(token, "%") {
		return decodePercentString(token)
	}

	if strings.ContainsAny(token, " \t") {
		prefix, ok := matchSimpleString(token)
		if !ok {
			return nil, fmt.Errorf("Whitespace outside simple-string")
		}
		return prefix, nil
	}

	if isBinary(token) {
		return decodeTwosComplement(token), nil
	}

	if prefix, ok := matchSimpleString(token); ok {
		return prefix, nil
	}

	return nil, fmt.Errorf("Unrecognized value token")
}

func isBinary(token string) bool {
	if len(token) == 0 {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] != '0' && token[i] != '1' {
			return false
		}
	}
	return true
}

// decodeTwosComplement interprets a bitstring of length n as an unsigned
// binary number and subtracts 2^n when the most significant bit is set.
func decodeTwosComplement(token string) *big.Int {
	val := new(big.Int)
	val.SetString(token, 2) // token is pre-validated by isBinary

	if token[0] == '1' {
		width := new(big.Int).Lsh(big.NewInt(1), uint(len(token)))
		val.Sub(val, width)
	}

	return val
}

// matchSimpleString matches one or more of [A-Za-z0-9 \t] followed by a
// literal trailing 's'; the decoded value is everything before that 's'.
func matchSimpleString(token string) (string, bool) {
	if len(token) < 2 || token[len(token)-1] != 's' {
		return "", false
	}

	prefix := token[:len(token)-1]
	for i := 0; i < len(prefix); i++ {
		ch := prefix[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == ' ' || ch == '\t':
		default:
			return "", false
		}
	}
	return prefix, true
}

// decodePercentString decodes each well-formed '%XX' escape to one byte;
// every other byte is copied verbatim. Result bytes map 1:1 to code points
// 0-255 (no multi-byte text decoding).
func decodePercentString(token string) (string, error) {
	var result strings.Builder
	sawEscape := false

	for i := 0; i < len(token); {
		if token[i] != '%' {
			result.WriteRune(rune(token[i]))
			i++
			continue
		}

		if i+2 >= len(token) {
			return "", fmt.Errorf("Invalid percent-encoding in complex string")
		}
		b, err := strconv.ParseUint(token[i+1:i+3], 16, 8)
		if err != nil {
			return "", fmt.Errorf("Invalid percent-encoding in complex string")
		}
		result.WriteRune(rune(b))
		i += 3
		sawEscape = true
	}

	if !sawEscape {
		return "", fmt.Errorf("Complex string must contain at least one %%XX")
	}
	return result.String(), nil
}
