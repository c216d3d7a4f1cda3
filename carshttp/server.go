// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carshttp

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/xmidt-org/cars/carstls"
)

// DefaultAddress is the bind address used when none is configured.
const DefaultAddress = "127.0.0.1:3000"

// ServerConfig is the unmarshaled configuration for the http.Server and
// its listener.  Zero timeouts and limits mean no limit.
type ServerConfig struct {
	// Network is the tcp network to listen on.  The default is "tcp".
	Network string

	// Address is the bind address of the server.  If set to the empty string, the
	// server binds to an ephemeral loopback port.
	Address string

	// ReadTimeout corresponds to http.Server.ReadTimeout
	ReadTimeout time.Duration

	// ReadHeaderTimeout corresponds to http.Server.ReadHeaderTimeout
	ReadHeaderTimeout time.Duration

	// WriteTimeout corresponds to http.Server.WriteTimeout
	WriteTimeout time.Duration

	// IdleTimeout corresponds to http.Server.IdleTimeout
	IdleTimeout time.Duration

	// MaxHeaderBytes corresponds to http.Server.MaxHeaderBytes
	MaxHeaderBytes int

	// KeepAlive corresponds to net.ListenConfig.KeepAlive
	KeepAlive time.Duration

	// Header supplies HTTP headers to emit on every response from this server
	Header http.Header

	// TLS is the optional TLS configuration.  If set, the server uses HTTPS.
	TLS *carstls.Config
}

// DefaultServerConfig returns the ServerConfig used when nothing is configured.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address: DefaultAddress,
	}
}

// NewServer creates an http.Server from this configuration.  The handler is
// used as is, and errorLog may be nil.
func (sc ServerConfig) NewServer(h http.Handler, errorLog *log.Logger) (server *http.Server, err error) {
	server = &http.Server{
		Addr:              sc.Address,
		Handler:           h,
		ReadTimeout:       sc.ReadTimeout,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		WriteTimeout:      sc.WriteTimeout,
		IdleTimeout:       sc.IdleTimeout,
		MaxHeaderBytes:    sc.MaxHeaderBytes,
		ErrorLog:          errorLog,
	}

	server.TLSConfig, err = sc.TLS.New()
	return
}

// Listen is the ListenerFactory implementation driven by ServerConfig
func (sc ServerConfig) Listen(ctx context.Context, s *http.Server) (net.Listener, error) {
	return DefaultListenerFactory{
		ListenConfig: net.ListenConfig{
			KeepAlive: sc.KeepAlive,
		},
		Network: sc.Network,
	}.Listen(ctx, s)
}
