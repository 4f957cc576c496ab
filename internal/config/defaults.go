// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to fields that no source has set.
const (
	DefaultTokenIssuer     = "ledgerctl"
	DefaultTokenAudience   = "points-ledger"
	DefaultMaxTokenAge     = 5 * time.Minute
	DefaultLamportsPerByte = 3480
	DefaultRequestTimeout  = 30 * time.Second
	DefaultServerAddress   = "http://localhost:8080"
	DefaultKeyFile         = "ledger.key"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenAudience: DefaultTokenAudience,
			MaxTokenAge:   DefaultMaxTokenAge,
		},
		Storage: Storage{
			Rent: Rent{LamportsPerByte: DefaultLamportsPerByte},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Client: Client{
			ServerAddress:  DefaultServerAddress,
			KeyFile:        DefaultKeyFile,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
