// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carsconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func testNewViperFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		file = filepath.Join(t.TempDir(), "test.yaml")
	)

	require.NoError(
		os.WriteFile(file, []byte("server:\n  address: \":9999\"\n"), 0600),
	)

	v, err := NewViper(file)
	require.NoError(err)
	require.NotNil(v)
	assert.Equal(":9999", v.GetString("server.address"))
}

func testNewViperMissingFile(t *testing.T) {
	assert := assert.New(t)

	v, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)
	assert.Nil(v)
}

func testNewViperNoFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	defer func(l []string) { Locations = l }(Locations)
	Locations = []string{t.TempDir()}

	v, err := NewViper("")
	require.NoError(err)
	require.NotNil(v)
	assert.Empty(v.AllKeys())
}

func testNewViperEnvironment(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	defer func(l []string) { Locations = l }(Locations)
	Locations = []string{t.TempDir()}
	t.Setenv("CARS_PPROF_ENABLED", "true")

	v, err := NewViper("")
	require.NoError(err)
	assert.True(v.GetBool("pprof.enabled"))
}

func TestNewViper(t *testing.T) {
	t.Run("File", testNewViperFile)
	t.Run("MissingFile", testNewViperMissingFile)
	t.Run("NoFile", testNewViperNoFile)
	t.Run("Environment", testNewViperEnvironment)
}

func testSupplyNil(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		Supply(nil),
	)

	assert.ErrorIs(t, app.Err(), ErrNilViper)
}

func testSupplyWithOptions(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		v    = viper.New()
		opts []viper.DecoderConfigOption
		vv   *viper.Viper
	)

	app := fx.New(
		fx.NopLogger,
		Supply(v, Exact),
		fx.Populate(&vv, &opts),
	)

	require.NoError(app.Err())
	assert.Same(v, vv)
	assert.Len(opts, 1)
}

func TestSupply(t *testing.T) {
	t.Run("Nil", testSupplyNil)
	t.Run("WithOptions", testSupplyWithOptions)
}
