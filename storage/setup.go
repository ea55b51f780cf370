// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/fault"
)

// Pools - the set of pools in a database
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Assets          *PoolHandle `prefix:"A"`
	HolderNextCount *PoolHandle `prefix:"N"`
	HolderList      *PoolHandle `prefix:"L"`
	HolderIndex     *PoolHandle `prefix:"D"`
	TestData        *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open registry database
type Database struct {
	sync.RWMutex
	log  *logger.L
	db   *leveldb.DB
	sync bool
	Pool Pools
}

// Open - open up the database
//
// the directory is created if missing unless readOnly is set
func Open(name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	db, version, err := getDB(name, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.IncompatibleDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			return nil, fault.IncompatibleDatabaseVersion
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
		log.Infof("new database: %s", name)
	}

	d := &Database{
		log: log,
		db:  db,
	}

	err = d.setupPools()
	if nil != err {
		return nil, err
	}

	ok = true // prevent db close
	log.Infof("opened database: %s  version: 0x%x", name, currentDBVersion)
	return d, nil
}

// SetSync - select whether commits wait for the disk write
func (d *Database) SetSync(sync bool) {
	d.Lock()
	d.sync = sync
	d.Unlock()
}

// Close - close the database
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
		d.log.Info("closed")
		d.log.Flush()
	}
}

// fill in each Pools field from its prefix tag
func (d *Database) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	seen := make(map[byte]string)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %s has invalid prefix: %q: %w", fieldInfo.Name, prefixTag, fault.InvalidPoolPrefix)
		}

		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s reuses prefix of: %s: %w", fieldInfo.Name, other, fault.InvalidPoolPrefix)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// return:
//
//	database handle
//	version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("database version length: expected: %d  actual: %d: %w", 4, len(versionValue), fault.IncompatibleDatabaseVersion)
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
