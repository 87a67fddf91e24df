// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordertree/avl"
	"github.com/bitmark-inc/ordertree/fault"
)

// query operations
const (
	opFind = "find"
	opNext = "next"
	opPrev = "prev"
)

// request - everything the command line asked for
type request struct {
	keyType  string
	balanced bool
	keys     []string
	deletes  []string
	queries  []query
}

type query struct {
	operation string
	key       string
}

// queryResult - one answered query, Result is nil for no match
type queryResult struct {
	Operation string  `json:"operation"`
	Key       string  `json:"key"`
	Result    *string `json:"result"`
}

// report - the JSON output document
type report struct {
	Keys      []string      `json:"keys"`
	Count     int           `json:"count"`
	Height    int           `json:"height"`
	Rotations uint64        `json:"rotations"`
	Min       *string       `json:"min"`
	Max       *string       `json:"max"`
	Deleted   []string      `json:"deleted"`
	Missing   []string      `json:"missing"`
	Queries   []queryResult `json:"queries"`
}

// build the tree, apply deletes, answer queries
// the tree is checked after each phase
func process(log *logger.L, r *request) (*avl.Tree, *report, error) {

	keys, err := parseKeys(r.keyType, r.keys)
	if nil != err {
		return nil, nil, err
	}

	tree, err := buildTree(r.balanced, keys)
	if nil != err {
		return nil, nil, err
	}
	log.Infof("built: %d nodes  height: %d  rotations: %d", tree.Count(), tree.Height(), tree.Rotations())
	if err := tree.Check(); nil != err {
		return nil, nil, fmt.Errorf("build: %s", err)
	}

	rpt := &report{
		Deleted: []string{},
		Missing: []string{},
		Queries: []queryResult{},
	}

	deletes, err := parseKeys(r.keyType, r.deletes)
	if nil != err {
		return nil, nil, err
	}
	for _, k := range deletes {
		_, err := tree.Delete(k)
		if fault.IsErrNotFound(err) {
			log.Warnf("delete: %v: %s", k, err)
			rpt.Missing = append(rpt.Missing, fmt.Sprint(k))
			continue
		}
		if nil != err {
			return nil, nil, err
		}
		log.Debugf("deleted: %v", k)
		rpt.Deleted = append(rpt.Deleted, fmt.Sprint(k))
	}
	if err := tree.Check(); nil != err {
		return nil, nil, fmt.Errorf("delete: %s", err)
	}

	for _, q := range r.queries {
		k, err := parseKey(r.keyType, q.key)
		if nil != err {
			return nil, nil, err
		}
		p := (*avl.Node)(nil)
		switch q.operation {
		case opFind:
			p = tree.Find(k)
		case opNext:
			p = tree.FindNext(k)
		case opPrev:
			p = tree.FindPrev(k)
		default:
			return nil, nil, fmt.Errorf("unknown query: %q", q.operation)
		}
		rpt.Queries = append(rpt.Queries, queryResult{
			Operation: q.operation,
			Key:       q.key,
			Result:    keyString(p),
		})
	}

	rpt.Keys = make([]string, 0, tree.Count())
	for _, e := range tree.Entries() {
		rpt.Keys = append(rpt.Keys, fmt.Sprint(e.Key))
	}
	rpt.Count = tree.Count()
	rpt.Height = tree.Height()
	rpt.Rotations = tree.Rotations()
	if p, err := tree.Min(); nil == err {
		rpt.Min = keyString(p)
	}
	if p, err := tree.Max(); nil == err {
		rpt.Max = keyString(p)
	}

	return tree, rpt, nil
}

// either insert keys one at a time or construct directly from the
// sorted distinct keys
func buildTree(balanced bool, keys []avl.Item) (*avl.Tree, error) {
	if !balanced {
		tree := avl.New()
		for _, k := range keys {
			tree.Insert(k, nil)
		}
		return tree, nil
	}

	sorted := make([]avl.Item, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	entries := make([]avl.Entry, 0, len(sorted))
	for i, k := range sorted {
		if i > 0 && 0 == sorted[i-1].Compare(k) {
			continue
		}
		entries = append(entries, avl.Entry{Key: k})
	}
	return avl.Construct(entries)
}

func keyString(p *avl.Node) *string {
	if nil == p {
		return nil
	}
	s := fmt.Sprint(p.Key())
	return &s
}
