// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - digital asset records and their primary store
//
// A DigitalAsset is a value: every change builds a new record with
// Clone and replaces the stored copy.  The Store keeps one packed
// record per asset id and never deletes.
package asset
