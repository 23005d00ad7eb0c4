// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// outcome of deleting from a sub-tree
type deleteAction int

const (
	deleteDone     deleteAction = iota // removed below, links already corrected
	deleteNotFound deleteAction = iota // value is not in this sub-tree
	deleteReplace  deleteAction = iota // caller must install replacement in its link
)

type deleteResult[T Item[T]] struct {
	action      deleteAction
	replacement *node[T] // only for deleteReplace, may be nil
}

// Delete - removes a specific value from the tree
//
// returns true if the value was present
func (tree *Tree[T]) Delete(value T) bool {
	if nil == tree.root {
		return false
	}
	r := tree.root.delete(value)
	switch r.action {
	case deleteNotFound:
		return false
	case deleteReplace:
		tree.root = r.replacement
	}
	tree.count -= 1
	return true
}

// internal delete routine
func (p *node[T]) delete(value T) deleteResult[T] {
	switch c := p.value.Compare(value); {
	case c > 0: // p.value > value
		if nil == p.left {
			return deleteResult[T]{action: deleteNotFound}
		}
		r := p.left.delete(value)
		if deleteReplace == r.action {
			p.left = r.replacement
			return deleteResult[T]{action: deleteDone}
		}
		return r

	case c < 0: // p.value < value
		if nil == p.right {
			return deleteResult[T]{action: deleteNotFound}
		}
		r := p.right.delete(value)
		if deleteReplace == r.action {
			p.right = r.replacement
			return deleteResult[T]{action: deleteDone}
		}
		return r

	default: // found: delete p
		replacement := (*node[T])(nil)
		switch {
		case nil != p.left && nil != p.right:
			replacement = p.popSuccessor()
			replacement.left = p.left
			replacement.right = p.right // p.right has already been spliced
		case nil != p.left:
			replacement = p.left
		default:
			replacement = p.right // nil for a leaf
		}
		freeNode(p)
		return deleteResult[T]{
			action:      deleteReplace,
			replacement: replacement,
		}
	}
}

// detach the in-order successor: the leftmost node of the right
// sub-tree, its right sub-tree takes its place
//
// p.right must not be nil
func (p *node[T]) popSuccessor() *node[T] {
	link := &p.right
	for nil != (*link).left {
		link = &(*link).left
	}
	s := *link
	*link = s.right
	s.right = nil
	return s
}
