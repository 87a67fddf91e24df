// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ordertree/avl"
	"github.com/bitmark-inc/ordertree/fault"
)

// supported key types
const (
	integerKeys = "integer"
	stringKeys  = "string"
)

// a signed integer key
type integerKey int64

func (k integerKey) Compare(x interface{}) int {
	j := x.(integerKey)
	switch {
	case k < j:
		return -1
	case k > j:
		return +1
	default:
		return 0
	}
}

func (k integerKey) String() string {
	return strconv.FormatInt(int64(k), 10)
}

// a key compared byte-wise
type stringKey string

func (k stringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(stringKey)))
}

func (k stringKey) String() string {
	return string(k)
}

// convert text to a key of the configured type
func parseKey(keyType string, s string) (avl.Item, error) {
	switch keyType {
	case integerKeys:
		n, err := strconv.ParseInt(s, 10, 64)
		if nil != err {
			return nil, err
		}
		return integerKey(n), nil
	case stringKeys:
		return stringKey(s), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// convert a list of texts, stopping at the first bad one
func parseKeys(keyType string, texts []string) ([]avl.Item, error) {
	keys := make([]avl.Item, 0, len(texts))
	for _, s := range texts {
		k, err := parseKey(keyType, s)
		if nil != err {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// read keys one per line, blank lines and lines starting with '#'
// are ignored
func readKeys(r io.Reader) ([]string, error) {
	texts := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if "" == s || strings.HasPrefix(s, "#") {
			continue
		}
		texts = append(texts, s)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return texts, nil
}
