// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/registryd/fault"
)

// values for Configuration.OwnershipCheck
const (
	CheckHolder  = "holder"
	CheckCreator = "creator"
)

// Configuration - registry options
type Configuration struct {
	// who may transfer or revoke: the creator or the current holder
	OwnershipCheck string `gluamapper:"ownership_check" json:"ownership_check"`

	// restrict metadata updates to the same party
	MetadataOwnerOnly bool `gluamapper:"metadata_owner_only" json:"metadata_owner_only"`
}

// DefaultConfiguration - creator checked, metadata updates open
func DefaultConfiguration() *Configuration {
	return &Configuration{
		OwnershipCheck:    CheckCreator,
		MetadataOwnerOnly: false,
	}
}

// Validate - check option values, an empty check means creator
func (c *Configuration) Validate() error {
	switch c.OwnershipCheck {
	case "":
		c.OwnershipCheck = CheckCreator
	case CheckHolder, CheckCreator:
	default:
		return fault.InvalidOwnershipCheck
	}
	return nil
}
