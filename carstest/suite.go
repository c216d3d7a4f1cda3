// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carstest

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/cars/carsconfig"
	"github.com/xmidt-org/cars/carslog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"
)

// Suite is an embeddable type that makes viper-related tests simpler.
// Embed this type in testify/suite-style test types.
type Suite struct {
	suite.Suite

	// viper is the viper instance for each test
	viper *viper.Viper
}

var _ suite.SetupTestSuite = (*Suite)(nil)

// SetupTest initializes a new viper instance for each test
func (suite *Suite) SetupTest() {
	suite.viper = viper.New()
}

// Viper returns the viper instance for the current test.
func (suite *Suite) Viper() *viper.Viper {
	return suite.viper
}

// YAML is a shorthand for bootstrapping the current test's viper environment
// with a given YAML configuration
func (suite *Suite) YAML(v string) {
	suite.viper.SetConfigType("yaml")

	suite.Require().NoError(
		suite.viper.ReadConfig(strings.NewReader(v)),
	)
}

// options are the fx.Options every app in this suite starts with: the current
// viper environment and a logger that writes to the test log.
func (suite *Suite) options(more []fx.Option) []fx.Option {
	return append(
		[]fx.Option{
			carsconfig.Supply(suite.viper),
			carslog.Supply(zaptest.NewLogger(suite.T())),
		},
		more...,
	)
}

// Fxtest creates an *fxtest.App with the current viper environment, test
// logging, and the additional fx.Options
func (suite *Suite) Fxtest(more ...fx.Option) *fxtest.App {
	return fxtest.New(
		suite.T(),
		suite.options(more)...,
	)
}

// Fx creates an *fx.App with the current viper environment, test
// logging, and the additional fx.Options.  Use this for apps that are
// expected to fail.
func (suite *Suite) Fx(more ...fx.Option) *fx.App {
	return fx.New(
		suite.options(more)...,
	)
}
