// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package nosjmeta

import (
	"strings"
)

// cursor is a position-tracking view over the (already trimmed) input.
// It is owned by a single Parser invocation and never shared; the grammar
// is LL(1) so it never moves backwards.
type cursor struct {
	src string
	pos int
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

// peek returns the byte at the given lookahead offset, or 0 past the end.
func (c *cursor) peek(offset int) byte {
	if c.pos+offset >= len(c.src) {
		return 0
	}
	return c.src[c.pos+offset]
}

func (c *cursor) hasPrefix(seq string) bool {
	return strings.HasPrefix(c.src[c.pos:], seq)
}

func (c *cursor) advance(n int) { c.pos += n }

func (c *cursor) atEnd() bool { return c.pos >= len(c.src) }

// scanKey consumes a maximal run of lowercase ASCII letters.
func (c *cursor) scanKey() string {
	start := c.pos
	for !c.atEnd() {
		ch := c.src[c.pos]
		if ch < 'a' || ch > 'z' {
			break
		}
		c.pos++
	}
	return c.src[start:c.pos]
}
