// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package carslog builds the zap logger for this service and routes uber/fx
// container events through it.
package carslog

import (
	"context"

	"github.com/xmidt-org/cars/carsconfig"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the unmarshaled logging configuration.
type Config struct {
	// Development switches to zap's human-readable console output with
	// stack traces on warnings.
	Development bool

	// Level is the minimum enabled level, e.g. "debug", "info", "error".
	Level zapcore.Level
}

// NewLogger creates a zap logger from this configuration.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(c.Level)
	return zc.Build()
}

// LoggerIn is the set of dependencies for providing the application logger.
type LoggerIn struct {
	fx.In

	Config    Config
	Lifecycle fx.Lifecycle
}

// NewLoggerFromConfig is the fx constructor for the application *zap.Logger.
// Buffered output is flushed when the app stops.
func NewLoggerFromConfig(in LoggerIn) (*zap.Logger, error) {
	l, err := in.Config.NewLogger()
	if err == nil {
		in.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				// stderr and stdout commonly refuse fsync
				_ = l.Sync()
				return nil
			},
		})
	}

	return l, err
}

// FxLogger adapts a zap logger for uber/fx container events.
func FxLogger(l *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{
		Logger: l.Named("fx"),
	}
}

// Provide unmarshals Config from the given key and provides the *zap.Logger.
// uber/fx events are logged through that same logger.
func Provide(key string) fx.Option {
	return fx.Options(
		carsconfig.ProvideKey(key, Config{Level: zapcore.InfoLevel}),
		fx.Provide(NewLoggerFromConfig),
		fx.WithLogger(FxLogger),
	)
}

// Supply uses an existing logger for both the *zap.Logger component
// and uber/fx events.  Tests typically pass a zaptest logger here.
func Supply(l *zap.Logger) fx.Option {
	return fx.Options(
		fx.Supply(l),
		fx.WithLogger(func() fxevent.Logger {
			return FxLogger(l)
		}),
	)
}
