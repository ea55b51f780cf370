// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/command/registry-cli/rpccalls"
	"github.com/bitmark-inc/registryd/rpc/assets"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkRequired("id", c.String("id"))
	if nil != err {
		return err
	}
	caller, err := checkRequired("caller", c.String("caller"))
	if nil != err {
		return err
	}
	receiver, err := checkRequired("receiver", c.String("receiver"))
	if nil != err {
		return err
	}
	transferType, err := checkTransferType(c.String("type"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s transfer: %s  %q → %q\n", transferType, id, caller, receiver)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(&assets.TransferArguments{
		Id:           id,
		Caller:       caller,
		To:           receiver,
		TransferType: transferType,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runRevoke(c *cli.Context) error {

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

	response, err := client.Revoke(id, caller)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
