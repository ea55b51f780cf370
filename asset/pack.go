// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"math"
	"time"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/util"
)

// record tag, first Varint64 of every packed asset
const assetTag = 0x01

// flags for the optional metadata fields
const (
	hasDimensions = 1 << iota
	hasDuration
)

// Pack - binary form of an asset for storage
//
// Varint64(tag) id title description Varint64(type) creator holder
// hash date date Varint64(status) metadata Varint64(n) transfer*n
func (a *DigitalAsset) Pack() util.Packed {
	buffer := util.Packed{}.AppendUint64(assetTag)
	buffer = buffer.AppendString(a.Id)
	buffer = buffer.AppendString(a.Title)
	buffer = buffer.AppendString(a.Description)
	buffer = buffer.AppendUint64(uint64(a.AssetType))
	buffer = buffer.AppendString(a.CreatorId)
	buffer = buffer.AppendString(a.HolderId)
	buffer = buffer.AppendString(a.ContentHash)
	buffer = appendTime(buffer, a.RegistrationDate)
	buffer = appendTime(buffer, a.LastModified)
	buffer = buffer.AppendUint64(uint64(a.Status))

	m := a.Metadata
	buffer = buffer.AppendString(m.FileFormat)
	buffer = buffer.AppendUint64(uint64(m.FileSize))

	flags := uint64(0)
	if nil != m.Dimensions {
		flags |= hasDimensions
	}
	if nil != m.Duration {
		flags |= hasDuration
	}
	buffer = buffer.AppendUint64(flags)
	if nil != m.Dimensions {
		buffer = buffer.AppendString(*m.Dimensions)
	}
	if nil != m.Duration {
		buffer = buffer.AppendUint64(math.Float64bits(*m.Duration))
	}

	buffer = buffer.AppendUint64(uint64(len(m.AdditionalTags)))
	for _, tag := range m.AdditionalTags {
		buffer = buffer.AppendString(tag)
	}

	buffer = buffer.AppendUint64(uint64(len(a.TransferHistory)))
	for _, t := range a.TransferHistory {
		buffer = buffer.AppendString(t.Id)
		buffer = buffer.AppendString(t.FromId)
		buffer = buffer.AppendString(t.ToId)
		buffer = appendTime(buffer, t.TransferDate)
		buffer = buffer.AppendUint64(uint64(t.TransferType))
	}
	return buffer
}

// Unpack - turn a packed record back into an asset
func Unpack(record []byte) (*DigitalAsset, error) {
	u := util.NewUnpacker(record)

	if tag := u.Uint64(); nil == u.Err() && assetTag != tag {
		return nil, fault.NotAssetPack
	}

	a := &DigitalAsset{
		Id:          u.String(),
		Title:       u.String(),
		Description: u.String(),
		AssetType:   AssetType(u.Uint64()),
		CreatorId:   u.String(),
		HolderId:    u.String(),
		ContentHash: u.String(),
	}
	a.RegistrationDate = readTime(u)
	a.LastModified = readTime(u)
	a.Status = Status(u.Uint64())

	a.Metadata.FileFormat = u.String()
	a.Metadata.FileSize = int64(u.Uint64())
	flags := u.Uint64()
	if 0 != flags&hasDimensions {
		d := u.String()
		a.Metadata.Dimensions = &d
	}
	if 0 != flags&hasDuration {
		d := math.Float64frombits(u.Uint64())
		a.Metadata.Duration = &d
	}

	tagCount := u.Count()
	a.Metadata.AdditionalTags = make([]string, 0, tagCount)
	for i := 0; i < tagCount; i += 1 {
		a.Metadata.AdditionalTags = append(a.Metadata.AdditionalTags, u.String())
	}

	transferCount := u.Count()
	a.TransferHistory = make([]Transfer, 0, transferCount)
	for i := 0; i < transferCount; i += 1 {
		t := Transfer{
			Id:     u.String(),
			FromId: u.String(),
			ToId:   u.String(),
		}
		t.TransferDate = readTime(u)
		t.TransferType = TransferType(u.Uint64())
		if nil == u.Err() && !t.TransferType.Valid() {
			return nil, fault.InvalidTransferType
		}
		a.TransferHistory = append(a.TransferHistory, t)
	}

	if err := u.Err(); nil != err {
		return nil, err
	}
	if 0 != u.Remaining() {
		return nil, fault.NotAssetPack
	}
	if !a.AssetType.Valid() {
		return nil, fault.InvalidAssetType
	}
	if !a.Status.Valid() {
		return nil, fault.InvalidStatus
	}
	return a, nil
}

func appendTime(buffer util.Packed, t time.Time) util.Packed {
	return buffer.AppendUint64(uint64(t.UnixNano()))
}

func readTime(u *util.Unpacker) time.Time {
	return time.Unix(0, int64(u.Uint64())).UTC()
}
