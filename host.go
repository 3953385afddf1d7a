// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package endpoint

import "net/netip"

// HostAddr is a host, either an IP address or a domain name. Domain
// names are kept verbatim; no syntax validation is performed on them
// beyond being non-empty.
type HostAddr struct {
	ip     netip.Addr
	domain string
}

// HostFromIP returns a HostAddr for the given IP address.
func HostFromIP(ip netip.Addr) HostAddr {
	return HostAddr{ip: ip}
}

// HostFromDomain returns a HostAddr for the given domain name. The
// domain must be non-empty.
func HostFromDomain(domain string) (HostAddr, error) {
	if domain == "" {
		return HostAddr{}, &InvalidAddressError{Address: domain}
	}
	return HostAddr{domain: domain}, nil
}

// ParseHost classifies s as an IP literal or a domain name. An empty
// string is an error, never an empty domain.
func ParseHost(s string) (HostAddr, error) {
	if ip, err := netip.ParseAddr(s); err == nil {
		return HostAddr{ip: ip}, nil
	}
	return HostFromDomain(s)
}

// IsIP returns whether the host is an IP literal. If false, the host is
// a domain name.
func (h HostAddr) IsIP() bool {
	return h.ip.IsValid()
}

// IP returns the IP address. It is the zero netip.Addr for domain hosts.
func (h HostAddr) IP() netip.Addr {
	return h.ip
}

// Domain returns the domain name. It is empty for IP hosts.
func (h HostAddr) Domain() string {
	return h.domain
}

// String is the textual form of the host: the IP's standard text
// representation, or the domain verbatim.
func (h HostAddr) String() string {
	if h.ip.IsValid() {
		return h.ip.String()
	}
	return h.domain
}
