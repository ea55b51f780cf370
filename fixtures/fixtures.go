// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log to a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// TestDatabase - an empty database in its own temporary directory
type TestDatabase struct {
	*storage.Database
	directory string
}

// SetupTestDatabase - create an empty database, logger must already be set up
func SetupTestDatabase(t *testing.T) *TestDatabase {
	directory, err := ioutil.TempDir("", "registryd-test-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}

	database, err := storage.Open(filepath.Join(directory, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(directory)
		t.Fatalf("storage open error: %s", err)
	}

	return &TestDatabase{
		Database:  database,
		directory: directory,
	}
}

// Teardown - close and remove the database files
func (d *TestDatabase) Teardown() {
	d.Close()
	os.RemoveAll(d.directory)
}

// Path - location of the database files
func (d *TestDatabase) Path() string {
	return filepath.Join(d.directory, "test.leveldb")
}
