// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carshttp

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"
)

// ListenerFactory is a strategy for creating net.Listener instances.  The
// http.Server.Addr field is used as the address of the listener.  If the
// given server has a tls.Config set, the returned listener creates TLS connections
// with that configuration.
type ListenerFactory interface {
	Listen(context.Context, *http.Server) (net.Listener, error)
}

// ListenerFactoryFunc is a closure type that implements ListenerFactory
type ListenerFactoryFunc func(context.Context, *http.Server) (net.Listener, error)

// Listen implements ListenerFactory
func (lff ListenerFactoryFunc) Listen(ctx context.Context, s *http.Server) (net.Listener, error) {
	return lff(ctx, s)
}

// ListenerConstructor is a decorator for net.Listener instances.
type ListenerConstructor func(net.Listener) net.Listener

// ListenerChain is an immutable sequence of ListenerConstructors, applied in
// order.  The zero value is a valid, empty chain that will not decorate anything.
type ListenerChain struct {
	c []ListenerConstructor
}

// NewListenerChain creates a chain from a sequence of constructors.
func NewListenerChain(c ...ListenerConstructor) ListenerChain {
	return ListenerChain{
		c: append([]ListenerConstructor{}, c...),
	}
}

// Append returns a new chain with more constructors at the end.  This chain
// is not modified.
func (lc ListenerChain) Append(more ...ListenerConstructor) ListenerChain {
	if len(more) > 0 {
		return ListenerChain{
			c: append(
				append([]ListenerConstructor{}, lc.c...),
				more...,
			),
		}
	}

	return lc
}

// Then decorates a listener with all of the constructors in this chain.  The
// first constructor in the chain is the outermost decorator.
func (lc ListenerChain) Then(next net.Listener) net.Listener {
	for i := len(lc.c) - 1; i >= 0; i-- {
		next = lc.c[i](next)
	}

	return next
}

// Factory decorates a ListenerFactory so that each listener it creates
// is decorated with this chain.
func (lc ListenerChain) Factory(next ListenerFactory) ListenerFactory {
	if len(lc.c) > 0 {
		return ListenerFactoryFunc(func(ctx context.Context, s *http.Server) (net.Listener, error) {
			listener, err := next.Listen(ctx, s)
			if err == nil {
				listener = lc.Then(listener)
			}

			return listener, err
		})
	}

	return next
}

// DefaultListenerFactory is the default implementation of ListenerFactory.  The
// zero value of this type is a valid factory.
type DefaultListenerFactory struct {
	// ListenConfig is the object used to create the net.Listener
	ListenConfig net.ListenConfig

	// Network is the network to listen on, which must always be a TCP network.
	// If not set, "tcp" is used.
	Network string
}

// Listen binds the server's address, or an ephemeral loopback port when the
// server has no address.
func (f DefaultListenerFactory) Listen(ctx context.Context, server *http.Server) (net.Listener, error) {
	network := f.Network
	if len(network) == 0 {
		network = "tcp"
	}

	address := server.Addr
	if len(address) == 0 {
		address = "127.0.0.1:0"
	}

	l, err := f.ListenConfig.Listen(ctx, network, address)
	if err != nil {
		return nil, err
	}

	if server.TLSConfig != nil {
		l = tls.NewListener(l, server.TLSConfig)
	}

	return l, nil
}

// ServerExit is a callback run when a server exits its accept loop.  The error
// is whatever Serve returned, which is http.ErrServerClosed after a shutdown.
type ServerExit func(error)

// ShutdownOnExit returns a ServerExit that stops the enclosing fx.App when
// the accept loop exits for any reason other than a shutdown.
func ShutdownOnExit(shutdowner fx.Shutdowner, opts ...fx.ShutdownOption) ServerExit {
	return func(err error) {
		if !errors.Is(err, http.ErrServerClosed) {
			shutdowner.Shutdown(opts...)
		}
	}
}

// Serve runs the server's accept loop on l, then calls each onExit.
func Serve(s *http.Server, l net.Listener, onExit ...ServerExit) (err error) {
	defer func() {
		for _, f := range onExit {
			f(err)
		}
	}()

	err = s.Serve(l)
	return
}

// ServerOnStart returns an fx.Hook.OnStart closure that binds the listener
// and starts the accept loop in its own goroutine.
func ServerOnStart(s *http.Server, f ListenerFactory, onExit ...ServerExit) func(context.Context) error {
	return func(ctx context.Context) error {
		listener, err := f.Listen(ctx, s)
		if err != nil {
			return err
		}

		go Serve(s, listener, onExit...)
		return nil
	}
}
