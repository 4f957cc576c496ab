// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// flagSet binds a flag.FlagSet to the config it fills.
type flagSet struct {
	fs  *flag.FlagSet
	cfg *StructuredConfig
	// finish copies values that need conversion into cfg after parsing.
	finish func()
}

func (f *flagSet) parse(args []string) (*StructuredConfig, []string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if f.finish != nil {
		f.finish()
	}
	return f.cfg, f.fs.Args(), nil
}

// newServerFlags declares the server flags.
//
// Flags:
//
//	-a              HTTP server address in format [host]:[port]
//	-grpc-address   gRPC server address in format [host]:[port]
//	-d              database DSN
//	-c/-config      JSON file path with configs
//	-token-issuer   accepted token issuer
//	-token-audience expected token audience
//	-max-token-age  token lifetime bound (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rent-rate      deposit per stored byte
//	-version        application version
func newServerFlags() *flagSet {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var httpAddress, grpcAddress NetAddress

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Accepted token issuer")
	fs.StringVar(&cfg.App.TokenAudience, "token-audience", "", "Expected token audience")
	fs.DurationVar(&cfg.App.MaxTokenAge, "max-token-age", 0, "Token lifetime bound (e.g., 5m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Uint64Var(&cfg.Storage.Rent.LamportsPerByte, "rent-rate", 0, "Deposit per stored byte")
	fs.StringVar(&cfg.App.Version, "version", "", "Application version")

	return &flagSet{
		fs:  fs,
		cfg: cfg,
		finish: func() {
			cfg.Server.HTTPAddress = httpAddress.String()
			cfg.Server.GRPCAddress = grpcAddress.String()
		},
	}
}

// newClientFlags declares the global ledgerctl flags, given before the
// subcommand.
//
// Flags:
//
//	-s              ledger API base URL
//	-k              signing key file
//	-t              request timeout
//	-c/-config      JSON file path with configs
//	-token-issuer   token issuer name
//	-token-audience token audience
//	-token-ttl      lifetime of signed tokens
//	-v              verbose logging
func newClientFlags() *flagSet {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet("ledgerctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Client.ServerAddress, "s", "", "Ledger API base URL")
	fs.StringVar(&cfg.Client.KeyFile, "k", "", "Signing key file")
	fs.DurationVar(&cfg.Client.RequestTimeout, "t", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&cfg.App.TokenAudience, "token-audience", "", "Token audience")
	fs.DurationVar(&cfg.App.MaxTokenAge, "token-ttl", 0, "Token lifetime (e.g., 1m)")
	fs.BoolVar(&cfg.Client.Verbose, "v", false, "Verbose logging")

	return &flagSet{fs: fs, cfg: cfg}
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
