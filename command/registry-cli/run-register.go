// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/asset"
	"github.com/bitmark-inc/registryd/command/registry-cli/rpccalls"
	"github.com/bitmark-inc/registryd/registry"
)

// build the registration from the command flags
func registerArguments(c *cli.Context) (*registry.RegisterArguments, error) {
	title, err := checkRequired("title", c.String("title"))
	if nil != err {
		return nil, err
	}
	creator, err := checkRequired("creator", c.String("creator"))
	if nil != err {
		return nil, err
	}
	assetType, err := checkAssetType(c.String("type"))
	if nil != err {
		return nil, err
	}
	format, err := checkRequired("format", c.String("format"))
	if nil != err {
		return nil, err
	}

	hash := c.String("hash")
	size := c.Int64("size")
	if fileName := c.String("file"); "" != fileName {
		if "" != hash {
			return nil, fmt.Errorf("only one of --hash or --file is allowed")
		}
		fileName, err := checkFileName(fileName)
		if nil != err {
			return nil, err
		}
		fileHash, fileSize, err := fingerprintFile(fileName)
		if nil != err {
			return nil, err
		}
		hash = fileHash
		if !c.IsSet("size") {
			size = fileSize
		}
	}
	if "" == hash {
		return nil, fmt.Errorf("missing --hash or --file")
	}

	md := asset.Metadata{
		FileFormat:     format,
		FileSize:       size,
		AdditionalTags: c.StringSlice("tag"),
	}
	if nil == md.AdditionalTags {
		md.AdditionalTags = []string{}
	}
	if c.IsSet("dimensions") {
		dimensions := c.String("dimensions")
		md.Dimensions = &dimensions
	}
	if c.IsSet("duration") {
		duration := c.Float64("duration")
		md.Duration = &duration
	}

	return &registry.RegisterArguments{
		Title:       title,
		Description: c.String("description"),
		AssetType:   assetType,
		CreatorId:   creator,
		ContentHash: hash,
		Metadata:    md,
	}, nil
}

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	arguments, err := registerArguments(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "title: %q\n", arguments.Title)
		fmt.Fprintf(m.e, "creator: %q\n", arguments.CreatorId)
		fmt.Fprintf(m.e, "content hash: %s\n", arguments.ContentHash)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Register(arguments)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
