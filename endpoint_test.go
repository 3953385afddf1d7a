// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package endpoint_test

import (
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/ikmak/endpoint"
	"github.com/stretchr/testify/require"
)

func TestEndpoint_String(t *testing.T) {
	mustHost := func(s string) endpoint.HostAddr {
		h, err := endpoint.ParseHost(s)
		require.NoError(t, err)
		return h
	}
	mustNew := func(scheme endpoint.Scheme, host string, port uint16) endpoint.Endpoint {
		ep, err := endpoint.New(scheme, mustHost(host), port)
		require.NoError(t, err)
		return ep
	}

	tests := []struct {
		name     string
		ep       endpoint.Endpoint
		expected string
	}{
		{"ipv4", mustNew(endpoint.TCP, "127.0.0.1", 9000), "tcp://127.0.0.1:9000"},
		{"ipv6", mustNew(endpoint.WSS, "::1", 443), "wss://[::1]:443"},
		{"domain", mustNew(endpoint.AMQP, "queue.internal", 5672), "amqp://queue.internal:5672"},
		{"port zero", mustNew(endpoint.UDP, "10.0.0.1", 0), "udp://10.0.0.1:0"},
		{"unix", endpoint.NewUnix("/tmp/app.sock"), "unix:///tmp/app.sock"},
		{"file", endpoint.NewFile("/home/user/data.txt"), "file:///home/user/data.txt"},
		{"unix empty path", endpoint.NewUnix(""), "unix://"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.ep.String())
		})
	}
}

func TestNew_RejectsPathSchemes(t *testing.T) {
	h, err := endpoint.ParseHost("example.com")
	require.NoError(t, err)

	_, err = endpoint.New(endpoint.Unix, h, 80)
	require.ErrorIs(t, err, endpoint.ErrInvalidScheme)

	_, err = endpoint.New(endpoint.File, h, 80)
	require.ErrorIs(t, err, endpoint.ErrInvalidScheme)

	_, err = endpoint.New(endpoint.Scheme("ftps"), h, 21)
	require.ErrorIs(t, err, endpoint.ErrInvalidScheme)
}

func TestScheme_Network(t *testing.T) {
	tests := []struct {
		scheme   endpoint.Scheme
		expected string
	}{
		{endpoint.HTTP, "tcp"},
		{endpoint.HTTPS, "tcp"},
		{endpoint.TCP, "tcp"},
		{endpoint.UDP, "udp"},
		{endpoint.MQTT, "tcp"},
		{endpoint.MQTTS, "tcp"},
		{endpoint.WS, "tcp"},
		{endpoint.WSS, "tcp"},
		{endpoint.CoAP, "udp"},
		{endpoint.CoAPS, "udp"},
		{endpoint.Redis, "tcp"},
		{endpoint.AMQP, "tcp"},
		{endpoint.FTP, "tcp"},
		{endpoint.Unix, "unix"},
		{endpoint.File, ""},
	}

	for _, test := range tests {
		t.Run(string(test.scheme), func(t *testing.T) {
			require.Equal(t, test.expected, test.scheme.Network())
		})
	}
}

func TestDefaultPort(t *testing.T) {
	p, ok := endpoint.DefaultPort(endpoint.HTTP)
	require.True(t, ok)
	require.Equal(t, uint16(80), p)

	p, ok = endpoint.DefaultPort(endpoint.CoAPS)
	require.True(t, ok)
	require.Equal(t, uint16(443), p)

	for _, s := range []endpoint.Scheme{endpoint.TCP, endpoint.UDP, endpoint.Unix, endpoint.File, "ftps"} {
		_, ok = endpoint.DefaultPort(s)
		require.False(t, ok, "scheme %q should have no default port", s)
	}
}

func TestEndpoint_DirectConstructionMatchesParse(t *testing.T) {
	parsed, err := endpoint.Parse("redis://cache.internal:6379")
	require.NoError(t, err)

	h, err := endpoint.HostFromDomain("cache.internal")
	require.NoError(t, err)
	built, err := endpoint.New(endpoint.Redis, h, 6379)
	require.NoError(t, err)

	require.Equal(t, parsed, built)

	parsed, err = endpoint.Parse("udp://10.1.2.3:53")
	require.NoError(t, err)
	built, err = endpoint.New(endpoint.UDP, endpoint.HostFromIP(netip.MustParseAddr("10.1.2.3")), 53)
	require.NoError(t, err)
	require.Equal(t, parsed, built)
}

func TestEndpoint_JSONRoundTrip(t *testing.T) {
	type config struct {
		Broker endpoint.Endpoint `json:"broker"`
		Socket endpoint.Endpoint `json:"socket"`
	}

	in := config{}
	err := json.Unmarshal([]byte(`{"broker":"mqtts://broker.local:8883","socket":"unix:///var/run/app.sock"}`), &in)
	require.NoError(t, err)
	require.Equal(t, endpoint.MQTTS, in.Broker.Scheme())
	require.Equal(t, uint16(8883), in.Broker.Port())
	require.Equal(t, "/var/run/app.sock", in.Socket.Path())

	out, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"broker":"mqtts://broker.local:8883","socket":"unix:///var/run/app.sock"}`, string(out))
}

func TestEndpoint_UnmarshalTextError(t *testing.T) {
	var ep endpoint.Endpoint
	err := ep.UnmarshalText([]byte("tcp://h"))
	require.Error(t, err)

	var addrErr *endpoint.InvalidAddressError
	require.ErrorAs(t, err, &addrErr)
}
