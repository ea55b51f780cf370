// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/asset"
	"github.com/bitmark-inc/registryd/command/registry-cli/rpccalls"
	"github.com/bitmark-inc/registryd/rpc/assets"
)

// only flags given on the command line become part of the update
func metadataUpdate(c *cli.Context) asset.MetadataUpdate {
	var update asset.MetadataUpdate
	if c.IsSet("format") {
		format := c.String("format")
		update.FileFormat = &format
	}
	if c.IsSet("size") {
		size := c.Int64("size")
		update.FileSize = &size
	}
	if c.IsSet("dimensions") {
		dimensions := c.String("dimensions")
		update.Dimensions = &dimensions
	}
	if c.IsSet("duration") {
		duration := c.Float64("duration")
		update.Duration = &duration
	}
	if c.IsSet("tag") {
		tags := c.StringSlice("tag")
		update.AdditionalTags = &tags
	}
	return update
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkRequired("id", c.String("id"))
	if nil != err {
		return err
	}
	caller, err := checkRequired("caller", c.String("caller"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UpdateMetadata(&assets.UpdateArguments{
		Id:       id,
		Caller:   caller,
		Metadata: metadataUpdate(c),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
