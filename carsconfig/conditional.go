// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carsconfig

import "go.uber.org/fx"

// Conditional gates a group of fx.Options behind a switch that was read
// from configuration before the fx.App was built.  A nil *Conditional is
// switched off.
type Conditional struct{}

// Then yields o when the switch is on and an empty fx.Options otherwise.
func (c *Conditional) Then(o ...fx.Option) fx.Option {
	if c == nil {
		return fx.Options()
	}

	return fx.Options(o...)
}

// If switches on a Conditional.  cmd/cars uses this to mount the profiling
// routes only when pprof.enabled is set:
//
//	carsconfig.If(v.GetBool("pprof.enabled")).Then(
//	  carshttp.ProvidePprof("pprof"),
//	)
func If(on bool) *Conditional {
	if on {
		return new(Conditional)
	}

	return nil
}
