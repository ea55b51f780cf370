// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances for the registry
//
// Every error is a single comparable instance of one of a small set
// of classes.  Callers test a specific error with == and a class of
// errors with the IsErrXXX functions, which also see through
// wrapping done with fmt.Errorf("...%w", err).
package fault
