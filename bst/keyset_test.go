// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrik-cihal/binary-search-tree/bst"
)

const keySetSample = 20000

// the key sets are sorted, shuffle a sample of them so the
// unbalanced tree does not degenerate into a list
func sampleKeys(name string) []stringItem {
	keys := testkeys.Load(name)
	r := rand.New(rand.NewSource(int64(len(keys))))
	r.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	seen := make(map[string]struct{})
	items := make([]stringItem, 0, keySetSample)
	for _, k := range keys {
		if len(items) >= keySetSample {
			break
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		items = append(items, stringItem{k})
	}
	return items
}

func TestBigKeySet(t *testing.T) {
	keys := sampleKeys("1mvl5_10")
	require.NotEmpty(t, keys)

	tree := bst.New[stringItem]()
	for _, k := range keys {
		tree.Insert(k)
	}
	require.True(t, tree.Check(), "inconsistent after inserts")

	expected := make([]string, 0, len(keys))
	for _, k := range keys {
		expected = append(expected, k.s)
	}
	sort.Strings(expected)

	actual := make([]string, 0, tree.Count())
	for _, v := range tree.Values() {
		actual = append(actual, v.s)
	}
	assert.Equal(t, expected, actual)

	// remove every other key
	for i, k := range keys {
		if 0 == i%2 {
			require.True(t, tree.Delete(k), "delete: %q", k.s)
		}
	}
	require.True(t, tree.Check(), "inconsistent after deletes")

	for i, k := range keys {
		assert.Equal(t, 0 != i%2, tree.Find(k), "find: %q", k.s)
	}
}

func BenchmarkKeySetInsert(b *testing.B) {
	keys := sampleKeys("1mvl5_10")
	b.ResetTimer()

	for i := 0; i < b.N; i += 1 {
		tree := bst.New[stringItem]()
		for _, k := range keys {
			tree.Insert(k)
		}
	}
}
