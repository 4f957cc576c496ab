// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the ledger server.
type Server interface {
	// RunServer serves requests until the process receives SIGTERM, SIGINT
	// or SIGQUIT, then shuts all transports down gracefully.
	RunServer() error

	// Run serves requests until ctx is done or one transport fails.
	Run(ctx context.Context) error
}

// transport is one listening server managed by [Server].
type transport interface {
	Name() string
	RunServer() error
	Shutdown(ctx context.Context) error
}
