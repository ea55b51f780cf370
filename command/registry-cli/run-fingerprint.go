// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/registryd/util"
)

// content hash and size of a file
func fingerprintFile(fileName string) (string, int64, error) {
	file, err := os.Open(fileName)
	if nil != err {
		return "", 0, err
	}
	defer file.Close()

	info, err := file.Stat()
	if nil != err {
		return "", 0, err
	}

	hash, err := util.ContentHash(file)
	if nil != err {
		return "", 0, err
	}
	return hash, info.Size(), nil
}

func runFingerprint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "checksumming file: %s\n", fileName)
	}

	fingerprint, size, err := fingerprintFile(fileName)
	if nil != err {
		return err
	}

	out := struct {
		FileName    string `json:"file_name"`
		FileSize    int64  `json:"file_size"`
		Fingerprint string `json:"fingerprint"`
	}{
		FileName:    fileName,
		FileSize:    size,
		Fingerprint: fingerprint,
	}
	return printJson(m.w, out)
}
