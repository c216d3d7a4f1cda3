// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carstest

import (
	"fmt"
	"testing"
)

// Testable is what fxtest and testify need from a test: *testing.T,
// *testing.B and most mocks qualify.
type Testable interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// AsTestable accepts either a Testable or something with a T() method,
// which covers testify suites like the cars server suite.  Anything else
// panics.
func AsTestable(v any) Testable {
	switch t := v.(type) {
	case Testable:
		return t

	case interface{ T() *testing.T }:
		return t.T()

	default:
		panic(fmt.Errorf("%T cannot be used as a Testable", v))
	}
}
