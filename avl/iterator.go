// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	// climb while arriving from the right
	for tree.up != nil && tree.up.right == tree {
		tree = tree.up
	}
	return tree.up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	// climb while arriving from the left
	for tree.up != nil && tree.up.left == tree {
		tree = tree.up
	}
	return tree.up
}

// Iterator - in-order traversal of a sub-tree using an explicit
// stack. Any insert or delete on the tree invalidates it.
type Iterator struct {
	root  *Node
	stack []*Node
}

// Iterator - create an iterator over the whole tree
func (tree *Tree) Iterator() *Iterator {
	return tree.root.Iterator()
}

// Iterator - create an iterator over the sub-tree rooted at this
// node, a nil node gives an empty sequence
func (tree *Node) Iterator() *Iterator {
	it := &Iterator{
		root:  tree,
		stack: make([]*Node, 0, height(tree)+1),
	}
	it.Reset()
	return it
}

// Reset - restart the traversal from the lowest key
func (it *Iterator) Reset() {
	it.stack = it.stack[:0]
	it.pushLeft(it.root)
}

// Next - return the next node in ascending key order, or nil when
// the traversal is complete
func (it *Iterator) Next() *Node {
	n := len(it.stack)
	if 0 == n {
		return nil
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.pushLeft(p.right)
	return p
}

func (it *Iterator) pushLeft(p *Node) {
	for nil != p {
		it.stack = append(it.stack, p)
		p = p.left
	}
}
