// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package carstest

import (
	"net"
	"time"
)

// ListenCapture returns a listener decorator that reports each bound address
// on ch and otherwise leaves the listener alone.  Servers under test bind
// 127.0.0.1:0, so this is how a test learns the port to dial.  ch must have
// room for the address, or listening blocks.
func ListenCapture(ch chan<- net.Addr) func(net.Listener) net.Listener {
	return func(l net.Listener) net.Listener {
		ch <- l.Addr()
		return l
	}
}

// ListenReceive waits up to timeout for an address from ListenCapture.  The
// boolean is false if nothing arrived in time.
func ListenReceive(ch <-chan net.Addr, timeout time.Duration) (net.Addr, bool) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case a := <-ch:
		return a, true

	case <-t.C:
		return nil, false
	}
}
