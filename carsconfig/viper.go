// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carsconfig

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

const (
	// ApplicationName is used for the config file name and the
	// environment variable prefix.
	ApplicationName = "cars"
)

var (
	// ErrNilViper is returned to the fx.App when the externally supplied Viper
	// instance is nil
	ErrNilViper = errors.New("the viper instance cannot be nil")
)

// Locations are the directories searched, in order, for a cars.yaml file
// when no explicit file is given.
var Locations = []string{
	".",
	"$HOME/." + ApplicationName,
	"/etc/" + ApplicationName,
}

// NewViper creates the viper environment for this service.  If file is set,
// that file must exist and be readable.  Otherwise, Locations are searched
// and a missing file is not an error, since every component has defaults.
//
// Environment variables prefixed with CARS_ are consulted for keys read
// directly through viper, e.g. CARS_PPROF_ENABLED for "pprof.enabled".
// Unmarshaled sections only see file values.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(ApplicationName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(file) > 0 {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		return v, nil
	}

	v.SetConfigName(ApplicationName)
	for _, l := range Locations {
		v.AddConfigPath(l)
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	}

	return v, err
}

// Supply is an analog to fx.Supply.  If the viper instance is nil, an fx.Error
// option is used to short-circuit the app startup.  Any decoder options are
// supplied as a []viper.DecoderConfigOption component, which every
// unmarshal in this package applies after its own defaults.
func Supply(v *viper.Viper, opts ...viper.DecoderConfigOption) fx.Option {
	if v == nil {
		return fx.Error(ErrNilViper)
	}

	if len(opts) > 0 {
		return fx.Supply(v, opts)
	}

	return fx.Supply(v)
}
