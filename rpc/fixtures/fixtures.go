// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
)

// LogCategory - logger tag for tests
const LogCategory = "testing"

// CertificateFiles - a freshly generated self-signed pair on disk
type CertificateFiles struct {
	Directory   string
	Certificate string
	Key         string
}

// NewCertificateFiles - generate a localhost certificate and key
func NewCertificateFiles(t *testing.T) *CertificateFiles {
	directory, err := ioutil.TempDir("", "registryd-rpc-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}

	cert, key, err := certgen.NewTLSCertPair("registryd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1", "localhost"})
	if nil != err {
		os.RemoveAll(directory)
		t.Fatalf("certificate generation error: %s", err)
	}

	c := &CertificateFiles{
		Directory:   directory,
		Certificate: filepath.Join(directory, "rpc.crt"),
		Key:         filepath.Join(directory, "rpc.key"),
	}
	if err := ioutil.WriteFile(c.Certificate, cert, 0600); nil != err {
		c.Remove()
		t.Fatalf("write certificate error: %s", err)
	}
	if err := ioutil.WriteFile(c.Key, key, 0600); nil != err {
		c.Remove()
		t.Fatalf("write key error: %s", err)
	}
	return c
}

// Remove - delete the files
func (c *CertificateFiles) Remove() {
	os.RemoveAll(c.Directory)
}
