// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carshttp

import (
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/cars"
	"github.com/xmidt-org/cars/carsconfig"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServerIn is the set of dependencies for binding the cars server to an fx.App.
type ServerIn struct {
	fx.In

	Config     ServerConfig
	Router     *mux.Router
	Logger     *zap.Logger
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner

	// Listener optionally decorates the server's listener.  Tests use this
	// to capture the bind address.
	Listener ListenerChain `optional:"true"`

	// Chain is an optional set of middleware run after the standard chain.
	Chain alice.Chain `optional:"true"`
}

// BindServer creates the http.Server and attaches it to the fx.App lifecycle.
// The server starts accepting when the app starts and shuts down gracefully
// when the app stops.  If the accept loop dies on its own, the app is shut down.
func BindServer(in ServerIn) error {
	var (
		logger = in.Logger.Named("server")
		errs   error
	)

	errorLog, err := zap.NewStdLogAt(logger, zapcore.ErrorLevel)
	errs = multierr.Append(errs, err)

	server, err := in.Config.NewServer(
		Middleware(in.Config, logger, in.Chain).Then(in.Router),
		errorLog,
	)

	errs = multierr.Append(errs, err)
	if errs != nil {
		return errs
	}

	in.Lifecycle.Append(fx.Hook{
		OnStart: ServerOnStart(
			server,
			in.Listener.Factory(in.Config),
			func(err error) {
				logger.Info("server exited", zap.Error(err))
			},
			ShutdownOnExit(in.Shutdowner),
		),
		OnStop: server.Shutdown,
	})

	return nil
}

// RouterIn is the set of dependencies for NewRouterFor.
type RouterIn struct {
	fx.In

	Config  HandlerConfig
	Handler *Handler
}

// NewRouterFor creates the server's router with the record routes attached.
func NewRouterFor(in RouterIn) *mux.Router {
	router := NewRouter()
	ConfigureRoutes(router, in.Config.BasePath, in.Handler)
	return router
}

// Provide assembles the cars server: ServerConfig is unmarshaled from serverKey,
// HandlerConfig from handlerKey, and the records come from cars.DefaultStore.
// Tests may swap the records with fx.Decorate on cars.Lookup.
//
// The enclosing fx.App must supply a *viper.Viper and a *zap.Logger.  The
// *mux.Router is exposed as a component, so other modules may add routes.
func Provide(serverKey, handlerKey string) fx.Option {
	return fx.Options(
		carsconfig.ProvideKey(serverKey, DefaultServerConfig()),
		carsconfig.ProvideKey(handlerKey, DefaultHandlerConfig()),
		fx.Provide(
			func() cars.Lookup {
				return cars.DefaultStore()
			},
			NewHandler,
			NewRouterFor,
		),
		fx.Invoke(BindServer),
	)
}
