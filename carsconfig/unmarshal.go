// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carsconfig

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/xmidt-org/cars"
	"go.uber.org/fx"
)

// UnmarshalIn is the set of dependencies for all unmarshal providers in this package
type UnmarshalIn struct {
	fx.In

	// Viper is the required Viper component in the enclosing fx.App
	Viper *viper.Viper

	// DecodeOptions are an optional set of options from the enclosing fx.App
	DecodeOptions []viper.DecoderConfigOption `optional:"true"`
}

// UnmarshalError describes a failure to unmarshal a configuration key.
type UnmarshalError struct {
	Key string
	Err error
}

// Error satisfies the error interface.
func (ue *UnmarshalError) Error() string {
	return fmt.Sprintf("unable to unmarshal configuration key [%s]: %s", ue.Key, ue.Err)
}

// Unwrap returns the underlying decode error.
func (ue *UnmarshalError) Unwrap() error {
	return ue.Err
}

// ExitCode marks this as a configuration error.
func (ue *UnmarshalError) ExitCode() int {
	return cars.ConfigurationExitCode
}

// UnmarshalKey returns a constructor that produces a T unmarshaled from the
// given key.  The prototype is copied for each call and supplies the defaults
// for anything the configuration does not set.  A missing key leaves the
// prototype untouched.
//
// DefaultDecodeHooks is always applied first, followed by any injected
// options, followed by opts.
func UnmarshalKey[T any](key string, prototype T, opts ...viper.DecoderConfigOption) func(UnmarshalIn) (T, error) {
	return func(in UnmarshalIn) (T, error) {
		target := prototype
		err := in.Viper.UnmarshalKey(
			key,
			&target,
			Merge(
				[]viper.DecoderConfigOption{DefaultDecodeHooks},
				in.DecodeOptions,
				opts,
			),
		)

		if err != nil {
			return prototype, &UnmarshalError{Key: key, Err: err}
		}

		return target, nil
	}
}

// ProvideKey is syntactic sugar for fx.Provide(UnmarshalKey(key, prototype, opts...)).
// The component type is T.
func ProvideKey[T any](key string, prototype T, opts ...viper.DecoderConfigOption) fx.Option {
	return fx.Provide(
		UnmarshalKey(key, prototype, opts...),
	)
}
