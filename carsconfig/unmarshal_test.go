// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carsconfig

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
)

type testConfig struct {
	Address string
	Timeout time.Duration
	Names   []string
	Level   zapcore.Level
}

func newTestViper(t *testing.T, yaml string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	return v
}

func testUnmarshalKeyFull(t *testing.T) {
	const yaml = `
test:
  address: ":8080"
  timeout: "15s"
  names: "a,b,c"
  level: "debug"
`

	var (
		assert  = assert.New(t)
		require = require.New(t)

		u = UnmarshalKey("test", testConfig{Address: "default"})
	)

	actual, err := u(UnmarshalIn{Viper: newTestViper(t, yaml)})
	require.NoError(err)
	assert.Equal(
		testConfig{
			Address: ":8080",
			Timeout: 15 * time.Second,
			Names:   []string{"a", "b", "c"},
			Level:   zapcore.DebugLevel,
		},
		actual,
	)
}

func testUnmarshalKeyDefaults(t *testing.T) {
	const yaml = `
test:
  timeout: "1m"
`

	var (
		assert  = assert.New(t)
		require = require.New(t)

		prototype = testConfig{Address: "default", Level: zapcore.WarnLevel}
		u         = UnmarshalKey("test", prototype)
	)

	actual, err := u(UnmarshalIn{Viper: newTestViper(t, yaml)})
	require.NoError(err)
	assert.Equal("default", actual.Address)
	assert.Equal(time.Minute, actual.Timeout)
	assert.Equal(zapcore.WarnLevel, actual.Level)

	// the prototype is never modified
	assert.Zero(prototype.Timeout)

	actual, err = UnmarshalKey("missing", prototype)(UnmarshalIn{Viper: newTestViper(t, yaml)})
	require.NoError(err)
	assert.Equal(prototype, actual)
}

func testUnmarshalKeyError(t *testing.T) {
	const yaml = `
test:
  timeout: "this is not a valid golang time.Duration"
`

	var (
		assert = assert.New(t)
		u      = UnmarshalKey("test", testConfig{})
	)

	_, err := u(UnmarshalIn{Viper: newTestViper(t, yaml)})
	var ue *UnmarshalError
	if assert.ErrorAs(err, &ue) {
		assert.Equal("test", ue.Key)
		assert.Error(ue.Unwrap())
		assert.Contains(ue.Error(), "[test]")
		assert.Equal(2, ue.ExitCode())
	}
}

func testUnmarshalKeyExact(t *testing.T) {
	const yaml = `
test:
  address: ":8080"
  unknown: "this key does not exist in testConfig"
`

	var assert = assert.New(t)

	_, err := UnmarshalKey("test", testConfig{})(UnmarshalIn{Viper: newTestViper(t, yaml)})
	assert.NoError(err)

	_, err = UnmarshalKey("test", testConfig{}, Exact)(UnmarshalIn{Viper: newTestViper(t, yaml)})
	assert.Error(err)

	_, err = UnmarshalKey("test", testConfig{})(UnmarshalIn{
		Viper:         newTestViper(t, yaml),
		DecodeOptions: []viper.DecoderConfigOption{Exact},
	})

	assert.Error(err)
}

func TestUnmarshalKey(t *testing.T) {
	t.Run("Full", testUnmarshalKeyFull)
	t.Run("Defaults", testUnmarshalKeyDefaults)
	t.Run("Error", testUnmarshalKeyError)
	t.Run("Exact", testUnmarshalKeyExact)
}

func testProvideKeySuccess(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		actual  testConfig
	)

	app := fx.New(
		fx.NopLogger,
		Supply(newTestViper(t, "test:\n  address: \":1234\"\n")),
		ProvideKey("test", testConfig{}),
		fx.Populate(&actual),
	)

	require.NoError(app.Err())
	assert.Equal(":1234", actual.Address)
}

func testProvideKeyError(t *testing.T) {
	var actual testConfig

	app := fx.New(
		fx.NopLogger,
		Supply(newTestViper(t, "test:\n  timeout: \"nope\"\n")),
		ProvideKey("test", testConfig{}),
		fx.Populate(&actual),
	)

	assert.Error(t, app.Err())
}

func TestProvideKey(t *testing.T) {
	t.Run("Success", testProvideKeySuccess)
	t.Run("Error", testProvideKeyError)
}
