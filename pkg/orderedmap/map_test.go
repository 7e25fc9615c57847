// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"carvel.dev/nosj/pkg/orderedmap"
)

func TestMapOrdering(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)

	expectedKeys := []interface{}{"z", "a", "m"}
	if !reflect.DeepEqual(m.Keys(), expectedKeys) {
		t.Fatalf("expected keys %v, got %v", expectedKeys, m.Keys())
	}

	// overwriting keeps the original position
	m.Set("a", 4)
	if !reflect.DeepEqual(m.Keys(), expectedKeys) {
		t.Fatalf("expected keys %v after overwrite, got %v", expectedKeys, m.Keys())
	}

	val, found := m.Get("a")
	if !found || val != 4 {
		t.Fatalf("expected a=4, got %v (found=%t)", val, found)
	}

	if !m.Delete("z") {
		t.Fatalf("expected delete of z to succeed")
	}
	if m.Delete("z") {
		t.Fatalf("expected second delete of z to fail")
	}
	if m.Len() != 2 {
		t.Fatalf("expected len 2, got %d", m.Len())
	}
}

func TestMapMarshalJSONKeepsOrder(t *testing.T) {
	inner := orderedmap.NewMap()
	inner.Set("k", "v")

	m := orderedmap.NewMap()
	m.Set("z", int64(0))
	m.Set("a", int64(-1))
	m.Set("m", inner)

	bs, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal error: %s", err)
	}

	expected := `{"z":0,"a":-1,"m":{"k":"v"}}`
	if string(bs) != expected {
		t.Fatalf("expected %s, got %s", expected, bs)
	}
}

func TestConversionAsUnorderedStringMaps(t *testing.T) {
	inner := orderedmap.NewMap()
	inner.Set("k", int64(1))

	m := orderedmap.NewMap()
	m.Set("a", "str")
	m.Set("b", inner)

	result := orderedmap.Conversion{Object: m}.AsUnorderedStringMaps()

	expected := map[string]interface{}{
		"a": "str",
		"b": map[string]interface{}{"k": int64(1)},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Fatalf("expected %#v, got %#v", expected, result)
	}
}
