// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - the node at a zero based position in key order, nil if the
// index is out of range
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.count {
		return nil
	}

	p := tree.root
	for nil != p {
		nl := size(p.left)
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			index -= nl + 1 // skip left sub-tree and this node
			p = p.right
		default:
			return p
		}
	}
	return nil
}
