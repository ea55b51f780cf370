// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type ForbiddenError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadyRevoked               = StateError("asset is already revoked")
	AssetNotActive               = StateError("asset is not active")
	AssetNotFound                = NotFoundError("asset not found")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DuplicateAssetId             = ExistsError("duplicate asset id")
	IncompatibleDatabaseVersion  = ProcessError("incompatible database version")
	InvalidAssetType             = InvalidError("invalid asset type")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidFileSize              = InvalidError("file size must not be negative")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidOwnershipCheck        = InvalidError("invalid ownership check")
	InvalidPoolPrefix            = InvalidError("invalid pool prefix")
	InvalidStatus                = InvalidError("invalid status")
	InvalidTransferType          = InvalidError("invalid transfer type")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingCaller                = InvalidError("missing caller")
	MissingContentHash           = InvalidError("missing content hash")
	MissingCreator               = InvalidError("missing creator")
	MissingFileFormat            = InvalidError("missing file format")
	MissingId                    = InvalidError("missing asset id")
	MissingParameters            = InvalidError("missing parameters")
	MissingRecipient             = InvalidError("missing transfer recipient")
	MissingTitle                 = InvalidError("missing title")
	NotAssetPack                 = RecordError("not an asset pack")
	NotInitialised               = ProcessError("not initialised")
	NotOwner                     = ForbiddenError("caller is not the owner")
	RateLimiting                 = InvalidError("rate limiting")
	RecordTruncated              = RecordError("record is truncated")
	TransactionIsNotReady        = ProcessError("transaction is not ready")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e ForbiddenError) Error() string { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RecordError) Error() string    { return string(e) }
func (e StateError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { var t ExistsError; return errors.As(e, &t) }
func IsErrForbidden(e error) bool { var t ForbiddenError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool   { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool    { var t RecordError; return errors.As(e, &t) }
func IsErrState(e error) bool     { var t StateError; return errors.As(e, &t) }

// codes reported to clients and written to logs
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeForbidden  = "FORBIDDEN"
	CodeState      = "STATE_CONFLICT"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL_ERROR"
)

// Kind - stable code for the class of an error
//
// nil gives an empty string
func Kind(e error) string {
	switch {
	case nil == e:
		return ""
	case IsErrInvalid(e):
		return CodeValidation
	case IsErrNotFound(e):
		return CodeNotFound
	case IsErrForbidden(e):
		return CodeForbidden
	case IsErrState(e):
		return CodeState
	case IsErrExists(e):
		return CodeConflict
	default:
		return CodeInternal
	}
}
