// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package nosjmeta

import (
	"fmt"
)

// scanValueToken consumes a maximal run of characters up to the next
// structural delimiter (',', '>' or end of input), leaving the cursor on
// the delimiter. '(', ')', '<' and ':' are reserved and may never appear
// inside a bare scalar token; whitespace is validated downstream by the
// classifier (it is only legal inside simple-string tokens).
func (c *cursor) scanValueToken() (string, error) {
	start := c.pos
	for !c.atEnd() {
		ch := c.src[c.pos]
		if ch == ',' || ch == '>' {
			break
		}
		switch ch {
		case '(', ')', '<', ':':
			return "", fmt.Errorf("Unexpected structural character inside value")
		}
		c.pos++
	}
	return c.src[start:c.pos], nil
}
