// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
)

var (
	ErrExistsOne    = fault.ExistsError("exists one ")
	ErrForbiddenOne = fault.ForbiddenError("forbidden one")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrProcessOne   = fault.ProcessError("process one")
	ErrRecordOne    = fault.RecordError("record one")
	ErrStateOne     = fault.StateError("state one")
)

// test that the various errors fall into exactly one class
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		exists    bool
		forbidden bool
		invalid   bool
		notFound  bool
		process   bool
		record    bool
		state     bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrForbiddenOne, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, false, true, false, false},
		{ErrRecordOne, false, false, false, false, false, true, false},
		{ErrStateOne, false, false, false, false, false, false, true},
		{fault.AlreadyRevoked, false, false, false, false, false, false, true},
		{fault.NotOwner, false, true, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: exists: %v", i, err)
		assert.Equal(t, e.forbidden, fault.IsErrForbidden(err), "%d: forbidden: %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: invalid: %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: not found: %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: process: %v", i, err)
		assert.Equal(t, e.record, fault.IsErrRecord(err), "%d: record: %v", i, err)
		assert.Equal(t, e.state, fault.IsErrState(err), "%d: state: %v", i, err)
	}
}

func TestWrappedClass(t *testing.T) {
	err := fmt.Errorf("transfer %s: %w", "some-id", fault.AssetNotFound)

	assert.True(t, fault.IsErrNotFound(err), "wrapped not found")
	assert.False(t, fault.IsErrInvalid(err), "wrapped not found is invalid")
	assert.Equal(t, fault.CodeNotFound, fault.Kind(err), "wrong kind")
}

func TestKind(t *testing.T) {
	assert.Equal(t, "", fault.Kind(nil), "nil")
	assert.Equal(t, fault.CodeValidation, fault.Kind(fault.MissingTitle), "validation")
	assert.Equal(t, fault.CodeForbidden, fault.Kind(fault.NotOwner), "forbidden")
	assert.Equal(t, fault.CodeState, fault.Kind(fault.AssetNotActive), "state")
	assert.Equal(t, fault.CodeConflict, fault.Kind(fault.AlreadyInitialised), "conflict")
	assert.Equal(t, fault.CodeInternal, fault.Kind(fault.RecordTruncated), "record")
	assert.Equal(t, fault.CodeInternal, fault.Kind(fmt.Errorf("disk on fire")), "plain")
}
