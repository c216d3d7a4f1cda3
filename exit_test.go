// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package cars

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ExitCoderSuite struct {
	suite.Suite
}

func (suite *ExitCoderSuite) TestUseExitCode() {
	suite.Run("NilError", func() {
		suite.Panics(func() {
			UseExitCode(nil, 1)
		})
	})

	suite.Run("WithError", func() {
		cause := errors.New("expected")
		err := UseExitCode(cause, 123)
		suite.Require().Error(err)
		suite.ErrorIs(err, cause)
		suite.Equal(cause.Error(), err.Error())

		var ec ExitCoder
		suite.Require().ErrorAs(err, &ec)
		suite.Equal(123, ec.ExitCode())
	})
}

func (suite *ExitCoderSuite) TestExitCodeFor() {
	coder := func(error) int { return 255 }

	suite.Run("ExitCoder", func() {
		err := UseExitCode(errors.New("expected"), 123)
		suite.Equal(123, ExitCodeFor(err, nil))
		suite.Equal(123, ExitCodeFor(err, coder))
	})

	suite.Run("WrappedExitCoder", func() {
		err := fmt.Errorf("while building: %w", &UnknownIDStrategyError{Name: "sequence"})
		suite.Equal(ConfigurationExitCode, ExitCodeFor(err, nil))
	})

	suite.Run("NonExitCoder", func() {
		suite.Equal(DefaultErrorExitCode, ExitCodeFor(errors.New("expected"), nil))
		suite.Equal(255, ExitCodeFor(errors.New("expected"), coder))
	})

	suite.Run("NilError", func() {
		suite.Zero(ExitCodeFor(nil, nil))
		suite.Equal(255, ExitCodeFor(nil, coder))
	})
}

func TestExitCoder(t *testing.T) {
	suite.Run(t, new(ExitCoderSuite))
}
