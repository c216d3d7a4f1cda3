// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carshttp

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// DefaultBasePath is the base path under which records are served.
const DefaultBasePath = "cars"

// ParsePath splits a URL path on "/".  The first non-empty component is the
// base path, and the component immediately after it is the segment.  Either
// may be empty.  Components past the segment are ignored.
func ParsePath(path string) (base, segment string) {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if len(p) > 0 {
			base = p
			if i+1 < len(parts) {
				segment = parts[i+1]
			}

			break
		}
	}

	return
}

// BasePath returns a gorilla/mux matcher that matches requests whose
// base path, as defined by ParsePath, is exactly base.  Paths are compared
// in their escaped form, so "/c%61rs" is not "/cars".
func BasePath(base string) mux.MatcherFunc {
	return func(request *http.Request, _ *mux.RouteMatch) bool {
		b, _ := ParsePath(request.URL.EscapedPath())
		return b == base
	}
}

// NewRouter creates the router used by the cars server.  The router never
// cleans or redirects paths, and both unmatched paths and unmatched methods
// get NotFound.
func NewRouter() *mux.Router {
	router := mux.NewRouter().SkipClean(true)
	router.NotFoundHandler = http.HandlerFunc(NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(NotFound)
	return router
}

// ConfigureRoutes attaches the handler's operations to a router under the
// given base path.  If base is empty, DefaultBasePath is used.
//
//	GET  /{base}        -> List
//	GET  /{base}/       -> List
//	GET  /{base}/{id}   -> Get
//	POST /{base}        -> Create
func ConfigureRoutes(router *mux.Router, base string, h *Handler) {
	if len(base) == 0 {
		base = DefaultBasePath
	}

	router.MatcherFunc(BasePath(base)).
		Methods(http.MethodGet).
		HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			// ids are matched as sent: "/cars/1%2Fx" is not record 1
			_, id := ParsePath(request.URL.EscapedPath())
			if len(strings.TrimSpace(id)) == 0 {
				h.List(response, request)
			} else {
				h.Get(response, request, id)
			}
		})

	router.MatcherFunc(BasePath(base)).
		Methods(http.MethodPost).
		HandlerFunc(h.Create)
}
