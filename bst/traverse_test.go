// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraversePreOrder(t *testing.T) {
	tree := makeTree(50, 30, 70, 20, 40, 60, 80)

	assert.Equal(t, []visited{
		{50, 0},
		{30, 1}, {20, 2}, {40, 2},
		{70, 1}, {60, 2}, {80, 2},
	}, preOrder(tree))
}

func TestTraverseStop(t *testing.T) {
	tcs := []struct {
		name     string
		stopAt   intItem
		expected []intItem
	}{
		{
			name:     "stop at root",
			stopAt:   50,
			expected: []intItem{50},
		},
		{
			name:     "stop inside left sub-tree",
			stopAt:   20,
			expected: []intItem{50, 30, 20},
		},
		{
			name:     "stop at last node",
			stopAt:   80,
			expected: []intItem{50, 30, 20, 40, 70, 60, 80},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tree := makeTree(50, 30, 70, 20, 40, 60, 80)

			seen := []intItem{}
			tree.Traverse(func(value intItem, _ int) bool {
				seen = append(seen, value)
				return value != tc.stopAt
			})
			assert.Equal(t, tc.expected, seen)
		})
	}
}

func TestWalkAscendingAndStop(t *testing.T) {
	tree := makeTree(50, 30, 70, 20, 40, 60, 80)

	assert.Equal(t, []intItem{20, 30, 40, 50, 60, 70, 80}, tree.Values())

	seen := []intItem{}
	tree.Walk(func(value intItem) bool {
		seen = append(seen, value)
		return value < 40
	})
	assert.Equal(t, []intItem{20, 30, 40}, seen)
}

func TestPrint(t *testing.T) {
	tree := makeTree(2, 1, 3)

	var b bytes.Buffer
	depth := tree.Print(&b)

	expected := "       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"

	assert.Equal(t, 2, depth)
	assert.Equal(t, expected, b.String())
}
