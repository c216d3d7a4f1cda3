// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carshttp

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/justinas/alice"
	"github.com/xmidt-org/httpaux"
	"go.uber.org/zap"
)

// AccessLog returns a middleware that logs one line per request.
func AccessLog(l *zap.Logger) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			m := httpsnoop.CaptureMetrics(next, response, request)
			l.Info(
				"request",
				zap.String("method", request.Method),
				zap.String("path", request.URL.Path),
				zap.String("remoteAddr", request.RemoteAddr),
				zap.Int("status", m.Code),
				zap.Int64("bytes", m.Written),
				zap.Duration("duration", m.Duration),
			)
		})
	}
}

// ResponseHeader returns a middleware that sets a fixed set of headers on
// every response, before the decorated handler runs.  An empty header results
// in no decoration.
func ResponseHeader(h http.Header) alice.Constructor {
	hd := httpaux.NewHeader(h)
	return func(next http.Handler) http.Handler {
		if hd.Len() == 0 {
			return next
		}

		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			hd.SetTo(response.Header())
			next.ServeHTTP(response, request)
		})
	}
}

// Middleware builds the standard chain for the cars server: response headers
// first, then the access log, then any extra constructors.
func Middleware(sc ServerConfig, l *zap.Logger, extra alice.Chain) alice.Chain {
	return alice.New(
		ResponseHeader(sc.Header),
		AccessLog(l),
	).Extend(extra)
}
