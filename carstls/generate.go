// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carstls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

// CreateTestServerFiles writes a self-signed certificate for localhost and its
// key into dir, returning the certificate file and key file names.  Only tests
// should use this.
func CreateTestServerFiles(dir string) (certificateFile, keyFile string, err error) {
	var (
		key      *ecdsa.PrivateKey
		derBytes []byte
		keyBytes []byte

		template = &x509.Certificate{
			SerialNumber: big.NewInt(837492837),
			Subject:      pkix.Name{CommonName: "localhost"},
			DNSNames:     []string{"localhost"},
			IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
			NotBefore:    time.Now().Add(-time.Hour),
			NotAfter:     time.Now().Add(time.Hour),
			KeyUsage:     x509.KeyUsageDigitalSignature,
			ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		}
	)

	key, err = ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err == nil {
		derBytes, err = x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	}

	if err == nil {
		keyBytes, err = x509.MarshalPKCS8PrivateKey(key)
	}

	if err == nil {
		certificateFile = filepath.Join(dir, "cert.pem")
		err = os.WriteFile(
			certificateFile,
			pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derBytes}),
			0600,
		)
	}

	if err == nil {
		keyFile = filepath.Join(dir, "key.pem")
		err = os.WriteFile(
			keyFile,
			pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes}),
			0600,
		)
	}

	return
}
