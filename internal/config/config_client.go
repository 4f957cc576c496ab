// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view used by ledgerctl.
type ClientConfig struct {
	// ServerAddress is the base URL of the ledger HTTP API.
	ServerAddress string
	// KeyFile is the path of the encrypted signing key.
	KeyFile string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// TokenIssuer is put into the "iss" claim of signed tokens.
	TokenIssuer string
	// TokenAudience is put into the "aud" claim of signed tokens.
	TokenAudience string
	// TokenTTL is the lifetime of a signed token.
	TokenTTL time.Duration
	// Verbose enables debug logging.
	Verbose bool
}

// GetClientConfig builds and validates the client configuration from the
// environment, the global flags in args and the optional JSON file.
//
// Parsing stops at the first non-flag argument; the remaining arguments (the
// subcommand and its operands) are returned alongside the config.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(newClientFlags(), args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}

	clientCfg := &ClientConfig{
		ServerAddress:  cfg.Client.ServerAddress,
		KeyFile:        cfg.Client.KeyFile,
		RequestTimeout: cfg.Client.RequestTimeout,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenAudience:  cfg.App.TokenAudience,
		TokenTTL:       cfg.App.MaxTokenAge,
		Verbose:        cfg.Client.Verbose,
	}

	return clientCfg, b.rest, clientCfg.validate()
}
