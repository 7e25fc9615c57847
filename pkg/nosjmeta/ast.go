// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package nosjmeta

import (
	"carvel.dev/nosj/pkg/filepos"
)

type Node interface {
	GetPosition() *filepos.Position
	SetPosition(*filepos.Position)

	GetValues() []interface{} // ie children
}

var _ = []Node{&Map{}, &MapItem{}}

// Map is one map frame: its entries in source order. Scalar entry values
// are *big.Int (num) or string (simple and complex strings decode to the
// same kind); nested maps are *Map.
type Map struct {
	Items    []*MapItem
	Position *filepos.Position
}

type MapItem struct {
	Key      string
	Value    interface{}
	Position *filepos.Position
}

func (m *Map) GetPosition() *filepos.Position    { return m.Position }
func (m *Map) SetPosition(pos *filepos.Position) { m.Position = pos }

func (m *Map) GetValues() []interface{} {
	var result []interface{}
	for _, item := range m.Items {
		result = append(result, item.Value)
	}
	return result
}

func (mi *MapItem) GetPosition() *filepos.Position    { return mi.Position }
func (mi *MapItem) SetPosition(pos *filepos.Position) { mi.Position = pos }

func (mi *MapItem) GetValues() []interface{} { return []interface{}{mi.Value} }
