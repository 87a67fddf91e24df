// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/ordertree/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
		{fault.ErrEmptyTree, false, false, true, false},
		{fault.ErrKeyNotFound, false, false, true, false},
		{fault.ErrInvalidRotation, false, false, false, true},
		{fault.ErrNotAscending, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// the two not found conditions must remain distinguishable
func TestDistinctInstances(t *testing.T) {
	if fault.ErrEmptyTree == fault.ErrKeyNotFound {
		t.Fatal("empty tree and key not found must differ")
	}
	if "tree is empty" != fault.ErrEmptyTree.Error() {
		t.Errorf("unexpected message: %q", fault.ErrEmptyTree.Error())
	}
}

func TestPanicWithError(t *testing.T) {
	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("expected panic")
		}
		s, ok := r.(string)
		if !ok {
			t.Fatalf("panic value is not a string: %v", r)
		}
		expected := "rotate left failed with error: rotation pivot is missing"
		if expected != s {
			t.Errorf("panic: %q  expected: %q", s, expected)
		}
	}()
	fault.PanicWithError("rotate left", fault.ErrInvalidRotation)
}
