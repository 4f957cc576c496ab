// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidRequestBody is returned when the JSON body cannot be decoded
	// into the request type of the route.
	ErrInvalidRequestBody = errors.New("invalid JSON was passed")

	// ErrInvalidPathParam is returned when a URL parameter is malformed.
	ErrInvalidPathParam = errors.New("invalid path parameter")
)
