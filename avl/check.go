// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/ordertree/fault"
)

// Check - verify every structural invariant of the tree, returns the
// first violation found
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrBrokenCount
	}

	previous := (*Node)(nil)
	it := tree.Iterator()
	for p := it.Next(); nil != p; p = it.Next() {
		if nil != previous && previous.key.Compare(p.key) >= 0 {
			return fault.ErrBrokenOrder
		}
		previous = p
	}
	return nil
}

// internal: validate a sub-tree, returns the number of nodes in it
func check(p *Node, up *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fault.ErrBrokenParentLink
	}
	nl, err := check(p.left, p)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, p)
	if nil != err {
		return 0, err
	}

	hl := height(p.left)
	hr := height(p.right)
	h := hl
	if hr > h {
		h = hr
	}
	if p.height != 1+h {
		return 0, fault.ErrBrokenHeight
	}
	if p.size != 1+nl+nr {
		return 0, fault.ErrBrokenSize
	}
	if s := hr - hl; s < -1 || s > 1 {
		return 0, fault.ErrBrokenBalance
	}
	return p.size, nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, keyOf(p.up), keyOf(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckCounts - check the cached sub-tree sizes against the tree count
func (tree *Tree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	return ok && n == tree.count
}

func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCounts(p.left)
	if !ok {
		return 0, false
	}
	nr, ok := checkCounts(p.right)
	if !ok {
		return 0, false
	}
	if p.size != 1+nl+nr {
		fmt.Printf("fail at node: %v   size: %d  expected: %d\n", p.key, p.size, 1+nl+nr)
		return 0, false
	}
	return p.size, true
}

func keyOf(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}
