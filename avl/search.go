// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ordertree/fault"
)

// Find - the node holding key, or nil if the key is not present
func (tree *Tree) Find(key Item) *Node {
	return tree.root.find(key)
}

func (tree *Node) find(key Item) *Node {
	for nil != tree {
		c := tree.key.Compare(key)
		switch {
		case c > 0: // tree.key > key
			tree = tree.left
		case c < 0: // tree.key < key
			tree = tree.right
		default:
			return tree
		}
	}
	return nil
}

// Search - find a specific item and its zero based position in key
// order, returns (nil, -1) if not found
func (tree *Tree) Search(key Item) (*Node, int) {
	return search(key, tree.root, 0)
}

func search(key Item, tree *Node, index int) (*Node, int) {
	if nil == tree {
		return nil, -1
	}

	c := tree.key.Compare(key)
	switch {
	case c > 0: // tree.key > key
		return search(key, tree.left, index)
	case c < 0: // tree.key < key
		return search(key, tree.right, index+size(tree.left)+1)
	default:
		return tree, index + size(tree.left)
	}
}

// FindNext - the node with the smallest key strictly greater than
// key, or nil if there is none
func (tree *Tree) FindNext(key Item) *Node {
	found := (*Node)(nil)
	for p := tree.root; nil != p; {
		if p.key.Compare(key) > 0 {
			found = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return found
}

// FindPrev - the node with the largest key strictly less than key,
// or nil if there is none
func (tree *Tree) FindPrev(key Item) *Node {
	found := (*Node)(nil)
	for p := tree.root; nil != p; {
		if p.key.Compare(key) < 0 {
			found = p
			p = p.right
		} else {
			p = p.left
		}
	}
	return found
}

// Ceiling - the node with the smallest key greater than or equal to
// key, or nil if there is none
func (tree *Tree) Ceiling(key Item) *Node {
	found := (*Node)(nil)
	for p := tree.root; nil != p; {
		c := p.key.Compare(key)
		switch {
		case c > 0:
			found = p
			p = p.left
		case c < 0:
			p = p.right
		default:
			return p
		}
	}
	return found
}

// Floor - the node with the largest key less than or equal to key,
// or nil if there is none
func (tree *Tree) Floor(key Item) *Node {
	found := (*Node)(nil)
	for p := tree.root; nil != p; {
		c := p.key.Compare(key)
		switch {
		case c < 0:
			found = p
			p = p.right
		case c > 0:
			p = p.left
		default:
			return p
		}
	}
	return found
}

// Min - the node with the lowest key
func (tree *Tree) Min() (*Node, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.first(), nil
}

// Max - the node with the highest key
func (tree *Tree) Max() (*Node, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.last(), nil
}
