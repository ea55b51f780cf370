// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/registryd/asset"
)

func checkRequired(name string, value string) (string, error) {
	value = strings.TrimSpace(value)
	if "" == value {
		return "", fmt.Errorf("missing --%s", name)
	}
	return value, nil
}

func checkAssetType(value string) (asset.AssetType, error) {
	var t asset.AssetType
	if err := t.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(value)))); nil != err {
		return 0, fmt.Errorf("asset type: %q: %s", value, err)
	}
	return t, nil
}

func checkTransferType(value string) (asset.TransferType, error) {
	var t asset.TransferType
	if err := t.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(value)))); nil != err {
		return 0, fmt.Errorf("transfer type: %q: %s", value, err)
	}
	return t, nil
}

// returns true for a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", fmt.Errorf("missing --file")
	}
	dir, err := checkFileExists(fileName)
	if nil != err {
		return "", err
	}
	if dir {
		return "", fmt.Errorf("not a file: %q", fileName)
	}
	return fileName, nil
}
