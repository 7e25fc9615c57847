// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package nosjmeta

import (
	"fmt"
	"math/big"

	"carvel.dev/nosj/pkg/orderedmap"
)

// AsPlain converts the decoded tree into orderedmap/scalar values for
// re-encoding (JSON, TOML). Nums that fit in an int64 convert to int64;
// wider ones keep their decimal rendering as a string.
func (m *Map) AsPlain() *orderedmap.Map {
	result := orderedmap.NewMap()

	for _, item := range m.Items {
		switch typedVal := item.Value.(type) {
		case *Map:
			result.Set(item.Key, typedVal.AsPlain())

		case *big.Int:
			if typedVal.IsInt64() {
				result.Set(item.Key, typedVal.Int64())
			} else {
				result.Set(item.Key, typedVal.String())
			}

		case string:
			result.Set(item.Key, typedVal)

		default:
			panic(fmt.Sprintf("Unexpected value type %T in decoded map", item.Value))
		}
	}

	return result
}
