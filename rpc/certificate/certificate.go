// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/util"
)

// Get - load a PEM certificate and key pair from files
//
// returns a TLS server configuration and the SHA3-256 fingerprint of
// the DER certificate
func Get(log *logger.L, name string, certificateFile string, keyFile string) (*tls.Config, util.FingerprintBytes, error) {
	var fingerprint util.FingerprintBytes

	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		log.Errorf("%s: read certificate: %q  error: %s", name, certificateFile, err)
		return nil, fingerprint, err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		log.Errorf("%s: read key: %q  error: %s", name, keyFile, err)
		return nil, fingerprint, err
	}

	return Parse(log, name, certificate, key)
}

// Parse - verify PEM certificate and key data
func Parse(log *logger.L, name string, certificate []byte, key []byte) (*tls.Config, util.FingerprintBytes, error) {
	var fingerprint util.FingerprintBytes

	keyPair, err := tls.X509KeyPair(certificate, key)
	if nil != err {
		log.Errorf("%s: failed to load keypair: %s", name, err)
		return nil, fingerprint, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	// openssl x509 -outform DER -in registryd-rpc.crt | sha3sum -a 256
	fingerprint = util.Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fingerprint, nil
}
