// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"io"

	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - holds a certificate fingerprint
type FingerprintBytes [32]byte

// Fingerprint - SHA3-256 of a DER certificate
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}

// content hash format version
const contentHashVersion = "01"

// ContentHash - fingerprint the content of an asset
//
// the result is the version followed by the hex SHA3-512 of the data
func ContentHash(r io.Reader) (string, error) {
	h := sha3.New512()
	if _, err := io.Copy(h, r); nil != err {
		return "", err
	}
	return contentHashVersion + hex.EncodeToString(h.Sum(nil)), nil
}
