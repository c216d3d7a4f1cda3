// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/cars"
	"github.com/xmidt-org/cars/carstest"
)

func TestParseCommandLine(t *testing.T) {
	testCases := []struct {
		args     []string
		expected CommandLine
	}{
		{args: nil},
		{args: []string{"-f", "test.yaml"}, expected: CommandLine{File: "test.yaml"}},
		{args: []string{"--file", "test.yaml"}, expected: CommandLine{File: "test.yaml"}},
		{args: []string{"--file=test.yaml"}, expected: CommandLine{File: "test.yaml"}},
	}

	for _, testCase := range testCases {
		t.Run(strings.Join(testCase.args, " "), func(t *testing.T) {
			var output bytes.Buffer
			cl, err := parseCommandLine(testCase.args, &output)
			assert.NoError(t, err)
			assert.Equal(t, testCase.expected, cl)
		})
	}
}

func TestRunConfigurationErrors(t *testing.T) {
	t.Run("UnknownFlag", func(t *testing.T) {
		var output bytes.Buffer
		err := run([]string{"--nosuchflag"}, &output)
		assert.Error(t, err)
		assert.Equal(t, cars.ConfigurationExitCode, cars.ExitCodeFor(err, nil))
		assert.Contains(t, output.String(), "nosuchflag")
		assert.Contains(t, output.String(), "--file")
	})

	t.Run("UnknownKey", func(t *testing.T) {
		var (
			output bytes.Buffer
			file   = filepath.Join(t.TempDir(), "cars.yaml")
		)

		require.NoError(t, os.WriteFile(file, []byte("server:\n  adress: 127.0.0.1:0\n"), 0600))
		err := run([]string{"--file", file}, &output)
		assert.Error(t, err)
		assert.NotZero(t, cars.ExitCodeFor(err, nil))
	})

	t.Run("MissingFile", func(t *testing.T) {
		var output bytes.Buffer
		err := run([]string{"-f", filepath.Join(t.TempDir(), "missing.yaml")}, &output)
		assert.Error(t, err)
		assert.Equal(t, cars.ConfigurationExitCode, cars.ExitCodeFor(err, nil))
	})

	t.Run("Help", func(t *testing.T) {
		var output bytes.Buffer
		assert.NoError(t, run([]string{"--help"}, &output))
		assert.Contains(t, output.String(), "--file")
	})
}

func TestOptions(t *testing.T) {
	const yaml = `
server:
  address: 127.0.0.1:0
log:
  development: true
  level: debug
pprof:
  enabled: true
`

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))

	app := carstest.NewApp(t, options(v))
	require.NoError(t, app.Err())
	app.RequireStart()
	app.RequireStop()
}
