// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package endpoint provides a typed representation of network and file
// endpoints. A connection string such as "tcp://host:port" or
// "unix:///path" parses into an immutable Endpoint value that can be
// rendered back to its canonical string form or, for network endpoints,
// resolved to concrete socket addresses.
//
// Example:
//		ep, err := endpoint.Parse("mqtt://broker.local:1883")
//		if err != nil { return err }
//		addrs, err := ep.Resolve(context.Background())
//		// dial one of addrs...
//
// Network endpoints use one of the schemes http, https, tcp, udp, mqtt,
// mqtts, ws, wss, coap, coaps, redis, amqp, or ftp, and always carry a
// host and a port. When the port is omitted from the string it is filled
// from a per-scheme default table (80 for the plaintext schemes, 443 for
// their TLS counterparts); tcp and udp have no default and require an
// explicit port. The unix and file schemes carry a filesystem path and
// no host or port.
//
// Parsing, formatting, and resolving are stateless; Endpoint and
// HostAddr values are never mutated after construction and may be shared
// across goroutines without synchronization.
package endpoint
