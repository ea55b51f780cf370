// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/registryd/fault"
)

// AssetType - the kind of content an asset represents
type AssetType uint64

// the zero value of each enumeration is invalid
const (
	Image AssetType = iota + 1
	Audio
	Video
	Document
	Code
)

var assetTypeNames = map[AssetType]string{
	Image:    "IMAGE",
	Audio:    "AUDIO",
	Video:    "VIDEO",
	Document: "DOCUMENT",
	Code:     "CODE",
}

// Status - lifecycle state of an asset
type Status uint64

const (
	Active Status = iota + 1
	Transferred
	Revoked
)

var statusNames = map[Status]string{
	Active:      "ACTIVE",
	Transferred: "TRANSFERRED",
	Revoked:     "REVOKED",
}

// TransferType - FULL moves the holding, LICENSE only records a grant
type TransferType uint64

const (
	Full TransferType = iota + 1
	License
)

var transferTypeNames = map[TransferType]string{
	Full:    "FULL",
	License: "LICENSE",
}

// Valid - true for a defined asset type
func (t AssetType) Valid() bool {
	_, ok := assetTypeNames[t]
	return ok
}

func (t AssetType) String() string {
	if s, ok := assetTypeNames[t]; ok {
		return s
	}
	return "*INVALID*"
}

// MarshalText - convert asset type to its literal tag
func (t AssetType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fault.InvalidAssetType
	}
	return []byte(t.String()), nil
}

// UnmarshalText - convert a literal tag to an asset type
func (t *AssetType) UnmarshalText(s []byte) error {
	for k, v := range assetTypeNames {
		if v == string(s) {
			*t = k
			return nil
		}
	}
	return fault.InvalidAssetType
}

// Valid - true for a defined status
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsTerminal - no transition leaves this status
func (s Status) IsTerminal() bool {
	return Revoked == s
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "*INVALID*"
}

// MarshalText - convert status to its literal tag
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fault.InvalidStatus
	}
	return []byte(s.String()), nil
}

// UnmarshalText - convert a literal tag to a status
func (s *Status) UnmarshalText(text []byte) error {
	for k, v := range statusNames {
		if v == string(text) {
			*s = k
			return nil
		}
	}
	return fault.InvalidStatus
}

// Valid - true for a defined transfer type
func (t TransferType) Valid() bool {
	_, ok := transferTypeNames[t]
	return ok
}

func (t TransferType) String() string {
	if s, ok := transferTypeNames[t]; ok {
		return s
	}
	return "*INVALID*"
}

// MarshalText - convert transfer type to its literal tag
func (t TransferType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fault.InvalidTransferType
	}
	return []byte(t.String()), nil
}

// UnmarshalText - convert a literal tag to a transfer type
func (t *TransferType) UnmarshalText(s []byte) error {
	for k, v := range transferTypeNames {
		if v == string(s) {
			*t = k
			return nil
		}
	}
	return fault.InvalidTransferType
}
