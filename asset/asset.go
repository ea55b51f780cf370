// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"time"

	"github.com/bitmark-inc/registryd/fault"
)

// DigitalAsset - the primary record for a registered asset
//
// CreatorId never changes; HolderId is the current holder of record
// and is the key under which the asset is listed in the holder index
type DigitalAsset struct {
	Id               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	AssetType        AssetType  `json:"assetType"`
	CreatorId        string     `json:"creatorId"`
	HolderId         string     `json:"holderId"`
	ContentHash      string     `json:"contentHash"`
	RegistrationDate time.Time  `json:"registrationDate"`
	LastModified     time.Time  `json:"lastModified"`
	TransferHistory  []Transfer `json:"transferHistory"`
	Status           Status     `json:"status"`
	Metadata         Metadata   `json:"metadata"`
}

// Transfer - one entry of an asset's history, never modified once recorded
type Transfer struct {
	Id           string       `json:"id"`
	FromId       string       `json:"fromId"`
	ToId         string       `json:"toId"`
	TransferDate time.Time    `json:"transferDate"`
	TransferType TransferType `json:"transferType"`
}

// Metadata - descriptive data about the asset content
type Metadata struct {
	FileFormat     string   `json:"fileFormat"`
	FileSize       int64    `json:"fileSize"`
	Dimensions     *string  `json:"dimensions,omitempty"`
	Duration       *float64 `json:"duration,omitempty"`
	AdditionalTags []string `json:"additionalTags"`
}

// MetadataUpdate - a partial metadata, nil fields are left unchanged
type MetadataUpdate struct {
	FileFormat     *string   `json:"fileFormat,omitempty"`
	FileSize       *int64    `json:"fileSize,omitempty"`
	Dimensions     *string   `json:"dimensions,omitempty"`
	Duration       *float64  `json:"duration,omitempty"`
	AdditionalTags *[]string `json:"additionalTags,omitempty"`
}

// Validate - check the fields required at registration
func (m Metadata) Validate() error {
	if "" == m.FileFormat {
		return fault.MissingFileFormat
	}
	if m.FileSize < 0 {
		return fault.InvalidFileSize
	}
	return nil
}

// Validate - check only the fields present in the update
func (u MetadataUpdate) Validate() error {
	if nil != u.FileFormat && "" == *u.FileFormat {
		return fault.MissingFileFormat
	}
	if nil != u.FileSize && *u.FileSize < 0 {
		return fault.InvalidFileSize
	}
	return nil
}

// IsEmpty - true if the update changes nothing
func (u MetadataUpdate) IsEmpty() bool {
	return nil == u.FileFormat &&
		nil == u.FileSize &&
		nil == u.Dimensions &&
		nil == u.Duration &&
		nil == u.AdditionalTags
}

// Merge - shallow merge of an update over existing metadata
//
// a present field replaces the old value as a whole, including the
// tag list; the receiver is not modified
func (m Metadata) Merge(u MetadataUpdate) Metadata {
	result := m.Clone()
	if nil != u.FileFormat {
		result.FileFormat = *u.FileFormat
	}
	if nil != u.FileSize {
		result.FileSize = *u.FileSize
	}
	if nil != u.Dimensions {
		d := *u.Dimensions
		result.Dimensions = &d
	}
	if nil != u.Duration {
		d := *u.Duration
		result.Duration = &d
	}
	if nil != u.AdditionalTags {
		result.AdditionalTags = copyStrings(*u.AdditionalTags)
	}
	return result
}

// Clone - deep copy of metadata
func (m Metadata) Clone() Metadata {
	result := m
	if nil != m.Dimensions {
		d := *m.Dimensions
		result.Dimensions = &d
	}
	if nil != m.Duration {
		d := *m.Duration
		result.Duration = &d
	}
	result.AdditionalTags = copyStrings(m.AdditionalTags)
	return result
}

// Clone - deep copy of an asset, so the result can be changed freely
func (a *DigitalAsset) Clone() *DigitalAsset {
	result := *a
	result.TransferHistory = make([]Transfer, len(a.TransferHistory))
	copy(result.TransferHistory, a.TransferHistory)
	result.Metadata = a.Metadata.Clone()
	return &result
}

// never returns nil so an empty list is serialised as []
func copyStrings(s []string) []string {
	result := make([]string, len(s))
	copy(result, s)
	return result
}
