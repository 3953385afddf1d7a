// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package endpoint

import (
	"context"
	"net"
	"net/netip"

	"github.com/pkg/errors"
)

type lookup interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

// Resolver resolves network endpoints to socket addresses.
type Resolver struct {
	// Holds the resolver to use for name lookups.
	Lookup lookup
}

// DefaultResolver returns a Resolver that uses the default Resolver
// from the net package.
func DefaultResolver() Resolver {
	return Resolver{net.DefaultResolver}
}

// Resolve converts a network endpoint to socket addresses. An IP host
// pairs directly with the endpoint's port; a domain host is looked up
// and every resolved address is paired with the port, in the order the
// lookup yields them. Lookup failures are reported as
// *InvalidAddressError carrying the domain. unix and file endpoints are
// not network-resolvable and always fail.
//
// The lookup blocks on the calling goroutine; ctx is the caller's
// cancellation handle. No retrying or reordering happens at this layer.
func (r *Resolver) Resolve(ctx context.Context, e Endpoint) ([]netip.AddrPort, error) {
	if !e.IsNetwork() {
		return nil, &InvalidAddressError{Address: "No SocketAddr available"}
	}
	if e.host.IsIP() {
		return []netip.AddrPort{netip.AddrPortFrom(e.host.IP(), e.port)}, nil
	}

	domain := e.host.Domain()
	ips, err := r.Lookup.LookupNetIP(ctx, "ip", domain)
	if err != nil {
		return nil, &InvalidAddressError{
			Address: domain,
			Wrapped: errors.Wrap(err, "name resolution failed"),
		}
	}
	addrs := make([]netip.AddrPort, len(ips))
	for i, ip := range ips {
		addrs[i] = netip.AddrPortFrom(ip, e.port)
	}
	return addrs, nil
}

// Resolve converts the endpoint to socket addresses using the default
// resolver from the net package. See Resolver.Resolve.
func (e Endpoint) Resolve(ctx context.Context) ([]netip.AddrPort, error) {
	r := DefaultResolver()
	return r.Resolve(ctx, e)
}
