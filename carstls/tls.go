// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package carstls holds the unmarshaled TLS settings for the cars server.
package carstls

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"os"
)

var (
	ErrTLSCertificateRequired         = errors.New("both a certificateFile and keyFile are required")
	ErrUnableToAddClientCACertificate = errors.New("unable to add client CA certificate")

	// strongCipherSuites are the tls.CipherSuite values that are safe for TLS versions less than 1.3
	strongCipherSuites = []uint16{
		tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
		tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	}
)

// Certificate is a certificate with its key file on the filesystem.
type Certificate struct {
	CertificateFile string
	KeyFile         string
}

// Load reads in the certificate and key files from the file system
func (c Certificate) Load() (tls.Certificate, error) {
	if len(c.CertificateFile) > 0 && len(c.KeyFile) > 0 {
		return tls.LoadX509KeyPair(c.CertificateFile, c.KeyFile)
	}

	return tls.Certificate{}, ErrTLSCertificateRequired
}

// Config is the server-side TLS configuration.
type Config struct {
	// Certificates is the required set of certificates presented to clients.
	Certificates []Certificate

	// ClientCAs are PEM files with the CAs used to verify client certificates.
	// Setting this field turns on mTLS.
	ClientCAs []string

	// NextProtos is the list of supported application protocols.  Defaults to "http/1.1" if unset.
	NextProtos []string

	// MinVersion is the minimum required TLS version.  If unset, TLS 1.3 is required.
	MinVersion uint16

	// MaxVersion is the maximum TLS version.  If unset, the crypto/tls default is used.
	MaxVersion uint16
}

func (c *Config) certificates(tc *tls.Config) error {
	if len(c.Certificates) == 0 {
		return ErrTLSCertificateRequired
	}

	for _, cert := range c.Certificates {
		loaded, err := cert.Load()
		if err != nil {
			return err
		}

		tc.Certificates = append(tc.Certificates, loaded)
	}

	if len(c.ClientCAs) > 0 {
		pool := x509.NewCertPool()
		for _, file := range c.ClientCAs {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			if !pool.AppendCertsFromPEM(data) {
				return ErrUnableToAddClientCACertificate
			}
		}

		tc.ClientCAs = pool
		tc.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return nil
}

// New constructs a *tls.Config from this Config.  If this instance is nil,
// it returns nil with no error, which means plain HTTP.
func (c *Config) New() (*tls.Config, error) {
	if c == nil {
		return nil, nil
	}

	tc := &tls.Config{
		MinVersion:   c.MinVersion,
		MaxVersion:   c.MaxVersion,
		NextProtos:   append([]string{}, c.NextProtos...),
		CipherSuites: strongCipherSuites,
	}

	if len(tc.NextProtos) == 0 {
		tc.NextProtos = []string{"http/1.1"}
	}

	if tc.MinVersion == 0 {
		tc.MinVersion = tls.VersionTLS13
	}

	if tc.MaxVersion != 0 && tc.MaxVersion < tc.MinVersion {
		tc.MaxVersion = tc.MinVersion
	}

	if err := c.certificates(tc); err != nil {
		return nil, err
	}

	return tc, nil
}
