// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package cars holds the vehicle records served by this service.

The record set is a fixed, read-only table built once per process.  Lookups
never expose the table itself, so no request can observe another's changes.
Packages carshttp and carsconfig build the HTTP surface and the configuration
on top of this package.
*/
package cars
