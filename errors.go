// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package endpoint

import (
	"errors"

	"github.com/ikmak/endpoint/internal/errutil"
)

// ErrInvalidScheme is returned when a string parses as a URL but its
// scheme is not one of the supported endpoint schemes.
var ErrInvalidScheme = errors.New("unsupported scheme")

// InvalidAddressError is returned for strings that do not describe a
// usable endpoint: malformed URLs, missing hosts, missing ports on
// schemes without a default, and failed name resolution. Address holds
// the offending input or host for diagnostics.
type InvalidAddressError struct {
	Address string
	Wrapped error
}

func (e *InvalidAddressError) Error() string {
	return errutil.RolledUpErrorMessage(e)
}

// Message gets the basic message of the error.
func (e *InvalidAddressError) Message() string {
	return "invalid address: " + e.Address
}

// Inner gets the inner error if one exists.
func (e *InvalidAddressError) Inner() error {
	return e.Wrapped
}

// Unwrap returns the underlying error.
func (e *InvalidAddressError) Unwrap() error {
	return e.Wrapped
}
