// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Visitor - called for each value with its depth (root is zero)
// return false to stop the traversal
type Visitor[T any] func(value T, depth int) bool

type traverseAction int

const (
	traverseStop     traverseAction = iota
	traverseContinue traverseAction = iota
)

// Traverse - depth first, pre-order walk: node, left sub-tree then
// right sub-tree
func (tree *Tree[T]) Traverse(visit Visitor[T]) {
	traverse(tree.root, 0, visit)
}

func traverse[T Item[T]](p *node[T], depth int, visit Visitor[T]) traverseAction {
	if nil == p {
		return traverseContinue
	}
	if !visit(p.value, depth) {
		return traverseStop
	}
	if traverseStop == traverse(p.left, depth+1, visit) {
		return traverseStop
	}
	return traverse(p.right, depth+1, visit)
}

// Walk - visit the values in ascending order
// return false from visit to stop early
func (tree *Tree[T]) Walk(visit func(value T) bool) {
	walk(tree.root, visit)
}

func walk[T Item[T]](p *node[T], visit func(value T) bool) traverseAction {
	if nil == p {
		return traverseContinue
	}
	if traverseStop == walk(p.left, visit) {
		return traverseStop
	}
	if !visit(p.value) {
		return traverseStop
	}
	return walk(p.right, visit)
}

// Values - all values in ascending order
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	tree.Walk(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}
