// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds signer-token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the database and storage deposit settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Client holds the settings of the ledgerctl command.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings that control signer tokens and versioning.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenIssuer is the "iss" claim. The client puts it into every token it
	// signs; when set on the server, only tokens from this issuer are
	// accepted.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenAudience is the "aud" claim that binds tokens to one ledger
	// deployment.
	// Env: APP_TOKEN_AUDIENCE
	TokenAudience string `env:"TOKEN_AUDIENCE"`

	// MaxTokenAge bounds how long a signer token stays valid (e.g. "5m").
	// Env: APP_MAX_TOKEN_AGE
	MaxTokenAge time.Duration `env:"MAX_TOKEN_AGE"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// Rent holds the storage deposit settings.
	Rent Rent `envPrefix:"RENT_"`
}

// DB holds connection settings for the account store.
type DB struct {
	// DSN selects the backend:
	//   - "postgres://..." or "postgresql://..." — PostgreSQL;
	//   - "file:..." or a path ending in ".db" — SQLite;
	//   - empty — in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Rent holds the parameters of the deposit paid for every stored account.
type Rent struct {
	// LamportsPerByte is the per-byte rate of the deposit.
	// Env: STORAGE_RENT_LAMPORTS_PER_BYTE
	LamportsPerByte uint64 `env:"LAMPORTS_PER_BYTE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds the settings of the ledgerctl command.
type Client struct {
	// ServerAddress is the base URL of the ledger HTTP API.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// KeyFile is the path of the encrypted signing key.
	// Env: CLIENT_KEY_FILE
	KeyFile string `env:"KEY_FILE"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Verbose enables debug logging to stderr.
	// Env: CLIENT_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the environment, os.Args and the JSON file they point to.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(newServerFlags(), os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
