// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package carsconfig bootstraps a viper environment and exposes unmarshaled
configuration as uber/fx components.

Each component is unmarshaled from its own key, starting from a prototype
that carries the defaults:

	fx.New(
	  carsconfig.Supply(v),
	  carsconfig.ProvideKey("server", carshttp.DefaultServerConfig()),
	)
*/
package carsconfig
