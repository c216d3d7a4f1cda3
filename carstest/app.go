// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carstest

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// NewApp builds an *fxtest.App that fails t on any start or stop error.
// See AsTestable for what t may be.
func NewApp(t any, o ...fx.Option) *fxtest.App {
	return fxtest.New(AsTestable(t), o...)
}

// NewErrApp builds an *fx.App that must fail to construct, such as a cars
// server with a bad duration in its configuration.  t fails if the app
// builds cleanly.  Container events are not logged, since the failure is
// the point of the test.
func NewErrApp(t any, o ...fx.Option) *fx.App {
	app := fx.New(append(o, fx.NopLogger)...)
	assert.Error(AsTestable(t), app.Err())
	return app
}
