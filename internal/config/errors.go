// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, no listen address at all).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs indicates invalid ledgerctl settings
	// (for example, a server address that is not a URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidAppConfigs indicates invalid token settings
	// (for example, empty audience or non-positive token age).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
