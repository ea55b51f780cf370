// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync/atomic"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/asset"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/ownership"
	"github.com/bitmark-inc/registryd/provenance"
	"github.com/bitmark-inc/registryd/storage"
)

// Registry - operations on registered assets
type Registry interface {
	Register(RegisterArguments) (*asset.DigitalAsset, error)
	Get(id string) (*asset.DigitalAsset, error)
	ListByCreator(creatorId string) ([]*asset.DigitalAsset, error)
	Transfer(id string, callerId string, toId string, transferType asset.TransferType) (*asset.DigitalAsset, error)
	UpdateMetadata(id string, callerId string, update asset.MetadataUpdate) (*asset.DigitalAsset, error)
	Revoke(id string, callerId string) (*asset.DigitalAsset, error)
	Provenance(id string) (*provenance.Record, error)
	Statistics() Statistics
}

// RegisterArguments - everything a new asset starts with
type RegisterArguments struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	AssetType   asset.AssetType `json:"assetType"`
	CreatorId   string          `json:"creatorId"`
	ContentHash string          `json:"contentHash"`
	Metadata    asset.Metadata  `json:"metadata"`
}

// Service - the registry over a database
//
// every mutation holds the lock for its asset and then the locks for
// any holder whose index entry it changes, in sorted order, from the
// first read until the commit
type Service struct {
	counters counters // first for 64 bit atomic alignment

	log      *logger.L
	database *storage.Database
	assets   *asset.Store
	holdings *ownership.Index
	ids      IdGenerator
	clock    Clock

	assetLocks  *keyLocks
	holderLocks *keyLocks

	checkCreator      bool
	metadataOwnerOnly bool
}

// New - create a registry service
//
// nil configuration, ids or clock select the defaults
func New(database *storage.Database, configuration *Configuration, ids IdGenerator, clock Clock) (*Service, error) {
	if nil == database {
		return nil, fault.DatabaseIsNotSet
	}
	if nil == configuration {
		configuration = DefaultConfiguration()
	}
	if err := configuration.Validate(); nil != err {
		return nil, err
	}
	if nil == ids {
		ids = uuidGenerator{}
	}
	if nil == clock {
		clock = systemClock{}
	}

	s := &Service{
		log:               logger.New("registry"),
		database:          database,
		assets:            asset.NewStore(database),
		holdings:          ownership.NewIndex(database),
		ids:               ids,
		clock:             clock,
		assetLocks:        newKeyLocks(),
		holderLocks:       newKeyLocks(),
		checkCreator:      CheckCreator == configuration.OwnershipCheck,
		metadataOwnerOnly: configuration.MetadataOwnerOnly,
	}
	s.log.Infof("ownership check: %s  metadata owner only: %t", configuration.OwnershipCheck, s.metadataOwnerOnly)
	return s, nil
}

// the party allowed to transfer or revoke
func (s *Service) owner(a *asset.DigitalAsset) string {
	if s.checkCreator {
		return a.CreatorId
	}
	return a.HolderId
}

// count a rejection and pass the error back
func (s *Service) reject(operation string, id string, err error) error {
	if fault.CodeInternal == fault.Kind(err) {
		atomic.AddUint64(&s.counters.failures, 1)
		s.log.Errorf("%s: %q: error: %s", operation, id, err)
	} else {
		atomic.AddUint64(&s.counters.rejected, 1)
		s.log.Debugf("%s: %q: rejected: %s", operation, id, err)
	}
	return err
}

// fetch the current record, absence is an error
func (s *Service) current(reader storage.Getter, id string) (*asset.DigitalAsset, error) {
	a, found, err := s.assets.Get(reader, id)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.AssetNotFound
	}
	return a, nil
}

// Register - create a new asset held by its creator
func (s *Service) Register(arguments RegisterArguments) (*asset.DigitalAsset, error) {
	if err := validateRegistration(arguments); nil != err {
		return nil, s.reject("register", arguments.CreatorId, err)
	}

	id := s.ids.NewId()
	now := s.clock.Now()

	unlockAsset := s.assetLocks.lock(id)
	defer unlockAsset()
	unlockHolder := s.holderLocks.lock(arguments.CreatorId)
	defer unlockHolder()

	trx := s.database.Begin()
	defer trx.Abort()

	exists, err := trx.Has(s.database.Pool.Assets, []byte(id))
	if nil != err {
		return nil, s.reject("register", id, err)
	}
	if exists {
		return nil, s.reject("register", id, fault.DuplicateAssetId)
	}

	a := &asset.DigitalAsset{
		Id:               id,
		Title:            arguments.Title,
		Description:      arguments.Description,
		AssetType:        arguments.AssetType,
		CreatorId:        arguments.CreatorId,
		HolderId:         arguments.CreatorId,
		ContentHash:      arguments.ContentHash,
		RegistrationDate: now,
		LastModified:     now,
		TransferHistory:  []asset.Transfer{},
		Status:           asset.Active,
		Metadata:         arguments.Metadata.Clone(),
	}

	s.assets.Put(trx, a)
	if err := s.holdings.AddHolding(trx, a.HolderId, a.Id); nil != err {
		return nil, s.reject("register", id, err)
	}
	if err := trx.Commit(); nil != err {
		return nil, s.reject("register", id, err)
	}

	atomic.AddUint64(&s.counters.registered, 1)
	s.log.Infof("registered: %s  type: %s  creator: %q", a.Id, a.AssetType, a.CreatorId)
	return a, nil
}

func validateRegistration(arguments RegisterArguments) error {
	if "" == arguments.Title {
		return fault.MissingTitle
	}
	if "" == arguments.CreatorId {
		return fault.MissingCreator
	}
	if "" == arguments.ContentHash {
		return fault.MissingContentHash
	}
	if !arguments.AssetType.Valid() {
		return fault.InvalidAssetType
	}
	return arguments.Metadata.Validate()
}

// Get - fetch an asset by id
func (s *Service) Get(id string) (*asset.DigitalAsset, error) {
	atomic.AddUint64(&s.counters.reads, 1)
	a, err := s.current(s.database, id)
	if nil != err {
		return nil, s.reject("get", id, err)
	}
	return a, nil
}

// ListByCreator - assets listed under a holder, in the order they were added
//
// all records come from one snapshot; an id without a record is skipped
func (s *Service) ListByCreator(creatorId string) ([]*asset.DigitalAsset, error) {
	atomic.AddUint64(&s.counters.reads, 1)

	snapshot, err := s.database.NewSnapshot()
	if nil != err {
		return nil, s.reject("list", creatorId, err)
	}
	defer snapshot.Release()

	ids, err := s.holdings.ListHoldings(snapshot, creatorId)
	if nil != err {
		return nil, s.reject("list", creatorId, err)
	}

	result := make([]*asset.DigitalAsset, 0, len(ids))
	for _, id := range ids {
		a, found, err := s.assets.Get(snapshot, id)
		if nil != err {
			return nil, s.reject("list", creatorId, err)
		}
		if !found {
			s.log.Warnf("list: %q: index entry without record: %s", creatorId, id)
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

// Transfer - record a transfer from the owner of an active asset
//
// FULL moves the asset to the recipient and marks it transferred;
// LICENSE only adds to the history
func (s *Service) Transfer(id string, callerId string, toId string, transferType asset.TransferType) (*asset.DigitalAsset, error) {
	if "" == toId {
		return nil, s.reject("transfer", id, fault.MissingRecipient)
	}
	if !transferType.Valid() {
		return nil, s.reject("transfer", id, fault.InvalidTransferType)
	}

	unlockAsset := s.assetLocks.lock(id)
	defer unlockAsset()

	trx := s.database.Begin()
	defer trx.Abort()

	a, err := s.current(trx, id)
	if nil != err {
		return nil, s.reject("transfer", id, err)
	}
	if callerId != s.owner(a) {
		return nil, s.reject("transfer", id, fault.NotOwner)
	}
	if asset.Active != a.Status {
		return nil, s.reject("transfer", id, fault.AssetNotActive)
	}

	now := s.clock.Now()
	t := asset.Transfer{
		Id:           s.ids.NewId(),
		FromId:       a.HolderId,
		ToId:         toId,
		TransferDate: now,
		TransferType: transferType,
	}

	updated := a.Clone()
	updated.TransferHistory = provenance.Append(a.TransferHistory, t)
	updated.LastModified = now

	if asset.Full == transferType {
		unlockHolders := s.holderLocks.lock(a.HolderId, toId)
		defer unlockHolders()

		if err := s.holdings.RemoveHolding(trx, a.HolderId, a.Id); nil != err {
			return nil, s.reject("transfer", id, err)
		}
		if err := s.holdings.AddHolding(trx, toId, a.Id); nil != err {
			return nil, s.reject("transfer", id, err)
		}
		updated.HolderId = toId
		updated.Status = asset.Transferred
	}

	s.assets.Put(trx, updated)
	if err := trx.Commit(); nil != err {
		return nil, s.reject("transfer", id, err)
	}

	if asset.Full == transferType {
		atomic.AddUint64(&s.counters.transfers, 1)
	} else {
		atomic.AddUint64(&s.counters.licences, 1)
	}
	s.log.Infof("transfer: %s  %s  from: %q  to: %q", id, transferType, t.FromId, t.ToId)
	return updated, nil
}

// UpdateMetadata - shallow merge of new metadata values
//
// allowed in any status, including revoked
func (s *Service) UpdateMetadata(id string, callerId string, update asset.MetadataUpdate) (*asset.DigitalAsset, error) {
	if err := update.Validate(); nil != err {
		return nil, s.reject("update", id, err)
	}

	unlockAsset := s.assetLocks.lock(id)
	defer unlockAsset()

	trx := s.database.Begin()
	defer trx.Abort()

	a, err := s.current(trx, id)
	if nil != err {
		return nil, s.reject("update", id, err)
	}
	if s.metadataOwnerOnly && callerId != s.owner(a) {
		return nil, s.reject("update", id, fault.NotOwner)
	}

	updated := a.Clone()
	updated.Metadata = a.Metadata.Merge(update)
	updated.LastModified = s.clock.Now()

	s.assets.Put(trx, updated)
	if err := trx.Commit(); nil != err {
		return nil, s.reject("update", id, err)
	}

	atomic.AddUint64(&s.counters.updates, 1)
	s.log.Infof("update: %s  by: %q", id, callerId)
	return updated, nil
}

// Revoke - permanently retire an asset
//
// the holder index is left unchanged
func (s *Service) Revoke(id string, callerId string) (*asset.DigitalAsset, error) {
	unlockAsset := s.assetLocks.lock(id)
	defer unlockAsset()

	trx := s.database.Begin()
	defer trx.Abort()

	a, err := s.current(trx, id)
	if nil != err {
		return nil, s.reject("revoke", id, err)
	}
	if callerId != s.owner(a) {
		return nil, s.reject("revoke", id, fault.NotOwner)
	}
	if a.Status.IsTerminal() {
		return nil, s.reject("revoke", id, fault.AlreadyRevoked)
	}

	updated := a.Clone()
	updated.Status = asset.Revoked
	updated.LastModified = s.clock.Now()

	s.assets.Put(trx, updated)
	if err := trx.Commit(); nil != err {
		return nil, s.reject("revoke", id, err)
	}

	atomic.AddUint64(&s.counters.revocations, 1)
	s.log.Infof("revoke: %s  by: %q", id, callerId)
	return updated, nil
}

// Provenance - transfer history and chain of holders
func (s *Service) Provenance(id string) (*provenance.Record, error) {
	atomic.AddUint64(&s.counters.reads, 1)
	a, err := s.current(s.database, id)
	if nil != err {
		return nil, s.reject("provenance", id, err)
	}
	r := provenance.Of(a)
	return &r, nil
}
