// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

type Position struct {
	offset *int // 0 based byte offset
	file   string
	known  bool
}

func NewPosition(offset int) *Position {
	if offset < 0 {
		panic("Offsets are 0 based")
	}
	return &Position{offset: &offset, known: true}
}

// NewPositionInFile returns the Position of byte "offset" within the file "file"
func NewPositionInFile(offset int, file string) *Position {
	p := NewPosition(offset)
	p.file = file
	return p
}

// NewUnknownPosition is equivalent of zero value *Position
func NewUnknownPosition() *Position {
	return &Position{}
}

func (p *Position) SetFile(file string) { p.file = file }

func (p *Position) IsKnown() bool { return p != nil && p.known }

func (p *Position) Offset() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	if p.offset == nil {
		panic("Position was not properly initialized")
	}
	return *p.offset
}

func (p *Position) GetFile() string {
	return p.file
}

func (p *Position) AsString() string {
	return "offset " + p.AsCompactString()
}

func (p *Position) AsCompactString() string {
	filePrefix := p.file
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if p.IsKnown() {
		return fmt.Sprintf("%s%d", filePrefix, p.Offset())
	}
	return fmt.Sprintf("%s?", filePrefix)
}

func (p *Position) AsIntString() string {
	if p.IsKnown() {
		return fmt.Sprintf("%d", p.Offset())
	}
	return "?"
}

func (p *Position) As4DigitString() string {
	if p.IsKnown() {
		return fmt.Sprintf("%4d", p.Offset())
	}
	return "????"
}

func (p *Position) DeepCopy() *Position {
	if p == nil {
		return nil
	}
	newPos := &Position{file: p.file, known: p.known}
	if p.offset != nil {
		offsetVal := *p.offset
		newPos.offset = &offsetVal
	}
	return newPos
}
