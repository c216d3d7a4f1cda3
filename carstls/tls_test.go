// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carstls

import (
	"crypto/tls"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigNil(t *testing.T) {
	var c *Config
	tc, err := c.New()
	assert.NoError(t, err)
	assert.Nil(t, tc)
}

func testConfigNoCertificates(t *testing.T) {
	tc, err := new(Config).New()
	assert.ErrorIs(t, err, ErrTLSCertificateRequired)
	assert.Nil(t, tc)
}

func testConfigMissingKeyFile(t *testing.T) {
	c := Config{
		Certificates: []Certificate{{CertificateFile: "cert.pem"}},
	}

	_, err := c.New()
	assert.ErrorIs(t, err, ErrTLSCertificateRequired)
}

func testConfigBasic(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	certificateFile, keyFile, err := CreateTestServerFiles(t.TempDir())
	require.NoError(err)

	c := Config{
		Certificates: []Certificate{{CertificateFile: certificateFile, KeyFile: keyFile}},
		MinVersion:   tls.VersionTLS12,
		MaxVersion:   tls.VersionTLS10,
	}

	tc, err := c.New()
	require.NoError(err)
	require.NotNil(tc)
	assert.Len(tc.Certificates, 1)
	assert.Equal([]string{"http/1.1"}, tc.NextProtos)
	assert.Equal(uint16(tls.VersionTLS12), tc.MinVersion)
	assert.Equal(uint16(tls.VersionTLS12), tc.MaxVersion)
	assert.Nil(tc.ClientCAs)
	assert.Equal(tls.NoClientCert, tc.ClientAuth)
}

func testConfigClientCAs(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		dir     = t.TempDir()
	)

	certificateFile, keyFile, err := CreateTestServerFiles(dir)
	require.NoError(err)

	c := Config{
		Certificates: []Certificate{{CertificateFile: certificateFile, KeyFile: keyFile}},
		ClientCAs:    []string{certificateFile},
	}

	tc, err := c.New()
	require.NoError(err)
	assert.Equal(uint16(tls.VersionTLS13), tc.MinVersion)
	assert.NotNil(tc.ClientCAs)
	assert.Equal(tls.RequireAndVerifyClientCert, tc.ClientAuth)

	c.ClientCAs = []string{keyFile}
	_, err = c.New()
	assert.ErrorIs(err, ErrUnableToAddClientCACertificate)

	c.ClientCAs = []string{filepath.Join(dir, "missing.pem")}
	_, err = c.New()
	assert.Error(err)
}

func TestConfig(t *testing.T) {
	t.Run("Nil", testConfigNil)
	t.Run("NoCertificates", testConfigNoCertificates)
	t.Run("MissingKeyFile", testConfigMissingKeyFile)
	t.Run("Basic", testConfigBasic)
	t.Run("ClientCAs", testConfigClientCAs)
}
