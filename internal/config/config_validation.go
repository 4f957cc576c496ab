// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged server configuration can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: neither HTTP nor gRPC address is set", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenAudience == "" || cfg.App.MaxTokenAge <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.ServerAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server address %q is not a URL", ErrInvalidClientConfigs, cfg.ServerAddress)
	}
	if cfg.KeyFile == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}
	if cfg.TokenAudience == "" || cfg.TokenTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
