// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/asset"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/ownership"
	"github.com/bitmark-inc/registryd/registry"
)

// sequential ids
type sequence struct {
	sync.Mutex
	n int
}

func (s *sequence) NewId() string {
	s.Lock()
	defer s.Unlock()
	s.n += 1
	return fmt.Sprintf("id-%05d", s.n)
}

// every call is one second later than the previous
type tickingClock struct {
	sync.Mutex
	t time.Time
}

var epoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

func (c *tickingClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type testRegistry struct {
	*registry.Service
	database *fixtures.TestDatabase
	clock    *tickingClock
}

func setup(t *testing.T, configuration *registry.Configuration) *testRegistry {
	fixtures.SetupTestLogger()
	d := fixtures.SetupTestDatabase(t)

	clock := &tickingClock{t: epoch}
	s, err := registry.New(d.Database, configuration, &sequence{}, clock)
	if nil != err {
		t.Fatalf("registry new error: %s", err)
	}
	return &testRegistry{
		Service:  s,
		database: d,
		clock:    clock,
	}
}

func teardown(r *testRegistry) {
	r.database.Teardown()
	fixtures.TeardownTestLogger()
}

func sampleArguments(creator string) registry.RegisterArguments {
	return registry.RegisterArguments{
		Title:       "Nocturne",
		Description: "piano, three minutes",
		AssetType:   asset.Audio,
		CreatorId:   creator,
		ContentHash: "01" + creator,
		Metadata: asset.Metadata{
			FileFormat:     "flac",
			FileSize:       31457280,
			AdditionalTags: []string{"piano"},
		},
	}
}

func register(t *testing.T, r *testRegistry, creator string) *asset.DigitalAsset {
	a, err := r.Register(sampleArguments(creator))
	if nil != err {
		t.Fatalf("register error: %s", err)
	}
	return a
}

func holdings(t *testing.T, r *testRegistry, holder string) []string {
	ids, err := ownership.NewIndex(r.database.Database).ListHoldings(r.database, holder)
	if nil != err {
		t.Fatalf("list holdings error: %s", err)
	}
	return ids
}

// every record is listed under its holder and nowhere else, and every
// listed id has a record
func checkIndex(t *testing.T, r *testRegistry, holders []string) {
	store := asset.NewStore(r.database.Database)

	listed := make(map[string]string)
	for _, h := range holders {
		for _, id := range holdings(t, r, h) {
			if other, ok := listed[id]; ok {
				t.Errorf("asset: %s listed under: %q and: %q", id, other, h)
			}
			listed[id] = h

			_, found, err := store.Get(r.database, id)
			assert.Nil(t, err, "get error")
			assert.True(t, found, "listed asset: %s has no record", id)
		}
	}

	err := store.Map(r.database, func(a *asset.DigitalAsset) error {
		assert.Equal(t, a.HolderId, listed[a.Id], "asset: %s listed under wrong holder", a.Id)
		return nil
	})
	assert.Nil(t, err, "map error")
}
