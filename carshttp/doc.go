// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package carshttp exposes the vehicle records over HTTP.

Routing is by base path: the first non-empty path segment selects the
resource and the segment after it, if any, is the record id.  Everything
outside of that scheme gets an empty 404.

The http.Server and its listener are built from unmarshaled configuration
and bound to the uber/fx lifecycle by Provide.
*/
package carshttp
