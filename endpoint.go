// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package endpoint

import (
	"fmt"
	"net/netip"
)

// Scheme identifies the protocol of an endpoint.
type Scheme string

// Supported schemes.
const (
	HTTP  Scheme = "http"
	HTTPS Scheme = "https"
	TCP   Scheme = "tcp"
	UDP   Scheme = "udp"
	MQTT  Scheme = "mqtt"
	MQTTS Scheme = "mqtts"
	WS    Scheme = "ws"
	WSS   Scheme = "wss"
	CoAP  Scheme = "coap"
	CoAPS Scheme = "coaps"
	Redis Scheme = "redis"
	AMQP  Scheme = "amqp"
	FTP   Scheme = "ftp"
	Unix  Scheme = "unix"
	File  Scheme = "file"
)

// defaultPorts is the port filled in when a network endpoint string
// omits an explicit port. tcp and udp have no entry: raw transport
// schemes require an explicit port.
var defaultPorts = map[Scheme]uint16{
	HTTP:  80,
	WS:    80,
	MQTT:  80,
	CoAP:  80,
	Redis: 80,
	AMQP:  80,
	FTP:   80,
	HTTPS: 443,
	WSS:   443,
	MQTTS: 443,
	CoAPS: 443,
}

// networks maps each scheme to the network its endpoints would be
// dialed with. file endpoints are not dialable and have no entry.
var networks = map[Scheme]string{
	HTTP:  "tcp",
	HTTPS: "tcp",
	TCP:   "tcp",
	UDP:   "udp",
	MQTT:  "tcp",
	MQTTS: "tcp",
	WS:    "tcp",
	WSS:   "tcp",
	CoAP:  "udp",
	CoAPS: "udp",
	Redis: "tcp",
	AMQP:  "tcp",
	FTP:   "tcp",
	Unix:  "unix",
}

// DefaultPort returns the default port for a scheme and whether one
// exists. tcp, udp, and the path schemes have none.
func DefaultPort(s Scheme) (uint16, bool) {
	p, ok := defaultPorts[s]
	return p, ok
}

// IsNetwork returns whether the scheme names a network endpoint, i.e.
// one carrying a host and port rather than a path.
func (s Scheme) IsNetwork() bool {
	switch s {
	case HTTP, HTTPS, TCP, UDP, MQTT, MQTTS, WS, WSS, CoAP, CoAPS, Redis, AMQP, FTP:
		return true
	}
	return false
}

// Network returns the network that endpoints of this scheme would be
// dialed with, e.g. "tcp", "udp", or "unix". It is empty for file
// endpoints.
func (s Scheme) Network() string {
	return networks[s]
}

func (s Scheme) String() string {
	return string(s)
}

// Endpoint is a parsed network or file endpoint. Network endpoints
// carry a host and a port; unix and file endpoints carry only a path.
// An Endpoint is immutable once constructed and may be shared freely
// across goroutines.
type Endpoint struct {
	scheme Scheme
	host   HostAddr
	port   uint16
	path   string
}

// New returns a network endpoint from already-validated parts. The
// scheme must be one of the network schemes; use NewUnix or NewFile
// for path endpoints.
func New(scheme Scheme, host HostAddr, port uint16) (Endpoint, error) {
	if !scheme.IsNetwork() {
		return Endpoint{}, ErrInvalidScheme
	}
	return Endpoint{scheme: scheme, host: host, port: port}, nil
}

// NewUnix returns an endpoint for a unix domain socket path.
func NewUnix(path string) Endpoint {
	return Endpoint{scheme: Unix, path: path}
}

// NewFile returns an endpoint for a file path.
func NewFile(path string) Endpoint {
	return Endpoint{scheme: File, path: path}
}

// Scheme returns the endpoint's scheme.
func (e Endpoint) Scheme() Scheme {
	return e.scheme
}

// Host returns the endpoint's host. It is the zero HostAddr for unix
// and file endpoints.
func (e Endpoint) Host() HostAddr {
	return e.host
}

// Port returns the endpoint's port. It is 0 for unix and file
// endpoints.
func (e Endpoint) Port() uint16 {
	return e.port
}

// Path returns the filesystem path of a unix or file endpoint. It is
// empty for network endpoints.
func (e Endpoint) Path() string {
	return e.path
}

// IsNetwork returns whether the endpoint is a network endpoint.
func (e Endpoint) IsNetwork() bool {
	return e.scheme.IsNetwork()
}

// Network returns the network the endpoint would be dialed with, e.g.
// "tcp" or "unix". It is empty for file endpoints.
func (e Endpoint) Network() string {
	return e.scheme.Network()
}

// String is the canonical form of the endpoint, e.g.
// "tcp://127.0.0.1:9000" or "unix:///tmp/app.sock". Parsing the
// canonical form of a parser-produced Endpoint reconstructs an equal
// value; a port filled from the default table is explicit in the
// canonical form.
func (e Endpoint) String() string {
	switch e.scheme {
	case Unix, File:
		return string(e.scheme) + "://" + e.path
	}
	return string(e.scheme) + "://" + e.hostport()
}

// hostport renders host:port, bracketing IPv6 literals so the result
// re-parses.
func (e Endpoint) hostport() string {
	if e.host.IsIP() {
		return netip.AddrPortFrom(e.host.IP(), e.port).String()
	}
	return fmt.Sprintf("%s:%d", e.host.Domain(), e.port)
}

// MarshalText implements the encoding.TextMarshaler interface, so
// endpoints can be embedded directly in JSON or YAML documents.
func (e Endpoint) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (e *Endpoint) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
