// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package cars

import (
	"errors"

	"go.uber.org/dig"
)

const (
	// DefaultErrorExitCode is used when no exit code could otherwise be
	// determined for a non-nil error.
	DefaultErrorExitCode int = 1

	// ConfigurationExitCode is the exit code for errors in configuration,
	// command line flags included.
	ConfigurationExitCode int = 2
)

// ExitCoder is an optional interface that an error can implement to supply
// the process exit code associated with that error.
type ExitCoder interface {
	// ExitCode returns the exit code associated with this error.
	ExitCode() int
}

type exitCodeErr struct {
	error
	exitCode int
}

func (ece exitCodeErr) ExitCode() int {
	return ece.exitCode
}

func (ece exitCodeErr) Unwrap() error {
	return ece.error
}

// UseExitCode associates an existing error with an exit code.  The returned
// error implements ExitCoder and unwraps to err.
//
// If err is nil, this function immediately panics so as not to delay a panic
// until the returned error is used.
func UseExitCode(err error, exitCode int) error {
	if err == nil {
		panic("cannot associate a nil error with an exit code")
	}

	return exitCodeErr{
		error:    err,
		exitCode: exitCode,
	}
}

// ErrorCoder is a strategy type for determining the exit code for an error.
// It is invoked with a nil error as well.
type ErrorCoder func(error) int

// ExitCodeFor determines the process exit code for an error:
//
//   - If err, or the root cause of an uber/fx container failure, implements
//     ExitCoder, that exit code is returned
//   - If coder is not nil, it is invoked to determine the exit code
//   - If err is not nil, DefaultErrorExitCode is returned
//   - Otherwise, this function returns zero (0).
func ExitCodeFor(err error, coder ErrorCoder) int {
	var ec ExitCoder
	switch {
	case errors.As(err, &ec):
		return ec.ExitCode()

	case err != nil && errors.As(dig.RootCause(err), &ec):
		return ec.ExitCode()

	case coder != nil:
		return coder(err)

	case err != nil:
		return DefaultErrorExitCode

	default:
		return 0
	}
}
