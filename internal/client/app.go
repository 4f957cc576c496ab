// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-points-ledger/internal/adapter"
	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/crypto"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/service"
	"github.com/MKhiriev/go-points-ledger/models"
)

// Prompter is the terminal the command talks to.
type Prompter interface {
	Passphrase(title string, confirm bool) (string, error)
	Confirm(message string) (bool, error)
	Copy(text string) error
	Print(rendered string)
}

type App struct {
	cfg       *config.ClientConfig
	keys      crypto.KeyStore
	adapter   adapter.ServerAdapter
	ui        Prompter
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewApp(
	cfg *config.ClientConfig,
	keys crypto.KeyStore,
	serverAdapter adapter.ServerAdapter,
	ui Prompter,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*App, error) {
	if cfg == nil || keys == nil || serverAdapter == nil || ui == nil {
		return nil, ErrMissingDependency
	}

	return &App{
		cfg:       cfg,
		keys:      keys,
		adapter:   serverAdapter,
		ui:        ui,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run executes the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Strs("args", rest).Msg("running command")

	switch cmd {
	case "keygen":
		return a.keygen(rest)
	case "whoami":
		return a.whoami(rest)
	case "create":
		return a.create(ctx, rest)
	case "transfer":
		return a.transfer(ctx, rest)
	case "remove":
		return a.remove(ctx, rest)
	case "get":
		return a.get(ctx, rest)
	case "credits":
		return a.credits(ctx, rest)
	case "version":
		return a.version(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

// loadSigner opens the key file, asking for the passphrase only when the
// key is encrypted.
func (a *App) loadSigner() (*auth.Signer, error) {
	key, err := a.keys.Load(a.cfg.KeyFile, "")
	if errors.Is(err, crypto.ErrPassphraseRequired) {
		passphrase, promptErr := a.ui.Passphrase("Passphrase for "+a.cfg.KeyFile, false)
		if promptErr != nil {
			return nil, promptErr
		}
		key, err = a.keys.Load(a.cfg.KeyFile, passphrase)
	}
	if err != nil {
		return nil, err
	}

	return auth.NewSigner(key, a.cfg.TokenIssuer, a.cfg.TokenAudience, a.cfg.TokenTTL)
}

// signedServices returns client services that sign with the local key.
func (a *App) signedServices() (*service.ClientServices, error) {
	signer, err := a.loadSigner()
	if err != nil {
		return nil, err
	}
	return service.NewClientServices(a.adapter, signer), nil
}

func (a *App) readOnlyServices() *service.ClientServices {
	return service.NewClientServices(a.adapter, nil)
}
