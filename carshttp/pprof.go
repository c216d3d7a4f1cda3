// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carshttp

import (
	"net/http/pprof"
	"strings"

	rpprof "runtime/pprof"

	"github.com/gorilla/mux"
	"github.com/xmidt-org/cars/carsconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// DefaultPprofPathPrefix is used as the path prefix for HTTP pprof handlers
// when no PprofConfig.PathPrefix is configured.
const DefaultPprofPathPrefix = "/debug/pprof"

// PprofConfig is the unmarshaled configuration for the pprof routes.
type PprofConfig struct {
	// Enabled is read by the executable to decide whether to mount these routes.
	Enabled bool

	// PathPrefix is the prefix URL for all the pprof routes.
	PathPrefix string
}

// ConfigurePprofRoutes adds the various pprof routes to a *mux.Router, usually a
// Subrouter.  The index at the bare prefix is not mapped here.
func ConfigurePprofRoutes(r *mux.Router) {
	r.Path("/").HandlerFunc(pprof.Index)
	r.Path("/cmdline").HandlerFunc(pprof.Cmdline)
	r.Path("/profile").HandlerFunc(pprof.Profile)
	r.Path("/symbol").HandlerFunc(pprof.Symbol)
	r.Path("/trace").HandlerFunc(pprof.Trace)

	// gorilla/mux matches more strictly than net/http.ServeMux,
	// so each named profile needs its own route
	for _, p := range rpprof.Profiles() {
		r.Path("/" + p.Name()).HandlerFunc(pprof.Index)
	}
}

// MountPprof maps the pprof handlers under prefix on the given router and
// returns the normalized prefix.
func MountPprof(router *mux.Router, prefix string) string {
	prefix = strings.TrimRight(prefix, "/")
	if len(prefix) == 0 {
		prefix = DefaultPprofPathPrefix
	}

	router.HandleFunc(prefix, pprof.Index)
	ConfigurePprofRoutes(router.PathPrefix(prefix + "/").Subrouter())
	return prefix
}

// ProvidePprof unmarshals a PprofConfig from key and mounts the pprof
// handlers on the server's *mux.Router.
func ProvidePprof(key string) fx.Option {
	return fx.Options(
		carsconfig.ProvideKey(key, PprofConfig{PathPrefix: DefaultPprofPathPrefix}),
		fx.Invoke(
			func(cfg PprofConfig, router *mux.Router, l *zap.Logger) {
				prefix := MountPprof(router, cfg.PathPrefix)
				l.Info("mapped pprof handlers", zap.String("prefix", prefix))
			},
		),
	)
}
