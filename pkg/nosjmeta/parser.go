// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package nosjmeta

import (
	"fmt"
	"strings"
	"unicode"

	"carvel.dev/nosj/pkg/filepos"
)

// defaultMaxDepth bounds recursion so adversarial nesting reports an error
// instead of exhausting the stack.
const defaultMaxDepth = 1024

type ParserOpts struct {
	// MaxDepth caps map nesting; 0 means the default of 1024 frames.
	MaxDepth int
}

type Parser struct {
	opts           ParserOpts
	associatedName string
}

func NewParser(opts ParserOpts) *Parser {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = defaultMaxDepth
	}
	return &Parser{opts, ""}
}

// ParseBytes parses exactly one marshalled map, optionally padded with
// leading/trailing whitespace. Whitespace is never skipped anywhere else;
// its only legal interior occurrence is inside a simple-string token.
// The first grammar violation (in scan order) aborts the whole parse.
func (p *Parser) ParseBytes(data []byte, associatedName string) (*Map, error) {
	p.associatedName = associatedName

	src := string(data)
	trimmedLeft := strings.TrimLeftFunc(src, unicode.IsSpace)
	// positions refer to the original input, not the trimmed view
	baseOffset := len(src) - len(trimmedLeft)

	cur := newCursor(strings.TrimRightFunc(trimmedLeft, unicode.IsSpace))

	if !cur.hasPrefix("(<") {
		return nil, fmt.Errorf("Map must start with '(<'")
	}
	topPos := p.newPosition(baseOffset, cur)
	cur.advance(2)

	topMap, err := p.parseMapBody(cur, baseOffset, 1)
	if err != nil {
		return nil, err
	}
	topMap.Position = topPos

	if cur.peek(0) != ')' {
		return nil, fmt.Errorf("Map must end with ')'")
	}
	cur.advance(1)

	if !cur.atEnd() {
		return nil, fmt.Errorf("Trailing characters after top-level map")
	}

	return topMap, nil
}

// parseMapBody parses the inside of '<...>' with the cursor just past the
// '<', consuming the matching '>'. Each invocation owns a fresh key set:
// keys are unique within this frame only, not across frames.
func (p *Parser) parseMapBody(cur *cursor, baseOffset, depth int) (*Map, error) {
	if depth > p.opts.MaxDepth {
		return nil, fmt.Errorf("Nesting too deep")
	}

	m := &Map{Position: filepos.NewUnknownPosition()}
	seenKeys := map[string]struct{}{}

	for {
		if cur.peek(0) == '>' {
			cur.advance(1)
			return m, nil
		}

		if len(m.Items) > 0 {
			if cur.peek(0) != ',' {
				return nil, fmt.Errorf("Expected ',' between key-value pairs")
			}
			cur.advance(1)
		}

		itemPos := p.newPosition(baseOffset, cur)

		key := cur.scanKey()
		if len(key) == 0 {
			return nil, fmt.Errorf("Missing key")
		}
		if _, found := seenKeys[key]; found {
			return nil, fmt.Errorf("Duplicate key in map")
		}
		seenKeys[key] = struct{}{}

		if cur.peek(0) != ':' {
			return nil, fmt.Errorf("Expected ':' after key")
		}
		cur.advance(1)

		val, err := p.parseValue(cur, baseOffset, depth)
		if err != nil {
			return nil, err
		}

		m.Items = append(m.Items, &MapItem{Key: key, Value: val, Position: itemPos})
	}
}

func (p *Parser) parseValue(cur *cursor, baseOffset, depth int) (interface{}, error) {
	if cur.hasPrefix("(<") {
		nestedPos := p.newPosition(baseOffset, cur)
		cur.advance(2)

		nested, err := p.parseMapBody(cur, baseOffset, depth+1)
		if err != nil {
			return nil, err
		}

		if cur.peek(0) != ')' {
			return nil, fmt.Errorf("Expected ')' after nested map")
		}
		cur.advance(1)

		nested.Position = nestedPos
		return nested, nil
	}

	token, err := cur.scanValueToken()
	if err != nil {
		return nil, err
	}
	return DecodeScalar(token)
}

func (p *Parser) newPosition(baseOffset int, cur *cursor) *filepos.Position {
	pos := filepos.NewPosition(baseOffset + cur.pos)
	pos.SetFile(p.associatedName)
	return pos
}
