// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package endpoint

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	unixPrefix = "unix://"
	filePrefix = "file://"
)

// Parse parses a connection string into an Endpoint.
//
// Strings beginning with "unix://" or "file://" are recognized by
// prefix alone; the remainder becomes the endpoint path verbatim, with
// no decoding or validation. Everything else must parse as a URL with a
// host. An omitted port is filled from the scheme's default-port table;
// tcp and udp have no default, so for them the port is required.
//
// Failures are reported as *InvalidAddressError, except for
// syntactically valid URLs with an unsupported scheme, which report
// ErrInvalidScheme.
func Parse(s string) (Endpoint, error) {
	if strings.HasPrefix(s, unixPrefix) {
		return NewUnix(strings.TrimPrefix(s, unixPrefix)), nil
	}
	if strings.HasPrefix(s, filePrefix) {
		return NewFile(strings.TrimPrefix(s, filePrefix)), nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return Endpoint{}, &InvalidAddressError{Address: s, Wrapped: err}
	}
	hostname := u.Hostname()
	if hostname == "" {
		return Endpoint{}, &InvalidAddressError{Address: s}
	}
	host, err := ParseHost(hostname)
	if err != nil {
		return Endpoint{}, &InvalidAddressError{Address: s}
	}

	scheme := Scheme(u.Scheme)

	// Port resolution happens before scheme dispatch: an unknown scheme
	// without an explicit port reports the address, not the scheme.
	var port uint16
	if portStr := u.Port(); portStr != "" {
		n, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return Endpoint{}, &InvalidAddressError{Address: s, Wrapped: err}
		}
		port = uint16(n)
	} else {
		p, ok := DefaultPort(scheme)
		if !ok {
			return Endpoint{}, &InvalidAddressError{Address: s}
		}
		port = p
	}

	if !scheme.IsNetwork() {
		return Endpoint{}, ErrInvalidScheme
	}
	return Endpoint{scheme: scheme, host: host, port: port}, nil
}
