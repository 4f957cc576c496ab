// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"crypto/ed25519"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-points-ledger/internal/tui"
	"github.com/MKhiriev/go-points-ledger/internal/utils"
	"github.com/MKhiriev/go-points-ledger/models"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parse parses flags and checks that exactly n operands remain.
func parse(fs *flag.FlagSet, args []string, n int, usage string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() != n {
		return nil, fmt.Errorf("%w: %s %s", ErrUsage, fs.Name(), usage)
	}
	return fs.Args(), nil
}

func (a *App) keygen(args []string) error {
	fs := newFlagSet("keygen")
	force := fs.Bool("force", false, "replace an existing key file")
	plain := fs.Bool("plain", false, "store the key without a passphrase")
	if _, err := parse(fs, args, 0, "[-force] [-plain]"); err != nil {
		return err
	}

	if _, err := os.Stat(a.cfg.KeyFile); err == nil && !*force {
		return ErrKeyExists
	}

	passphrase := ""
	if !*plain {
		var err error
		passphrase, err = a.ui.Passphrase("Passphrase for the new key", true)
		if err != nil {
			return err
		}
	}

	key, err := a.keys.GenerateKey()
	if err != nil {
		return err
	}
	if err = a.keys.Save(a.cfg.KeyFile, key, passphrase); err != nil {
		return err
	}

	identity, err := models.IdentityFromPublicKey(key.Public().(ed25519.PublicKey))
	if err != nil {
		return err
	}

	a.logger.Info().Str("key_file", a.cfg.KeyFile).Str("identity", identity.String()).Msg("key generated")
	a.ui.Print(tui.RenderIdentity(identity))
	return nil
}

func (a *App) whoami(args []string) error {
	fs := newFlagSet("whoami")
	copyID := fs.Bool("copy", false, "copy the identity to the clipboard")
	if _, err := parse(fs, args, 0, "[-copy]"); err != nil {
		return err
	}

	signer, err := a.loadSigner()
	if err != nil {
		return err
	}

	a.ui.Print(tui.RenderIdentity(signer.Identity()))
	if *copyID {
		return a.ui.Copy(signer.Identity().String())
	}
	return nil
}

func (a *App) create(ctx context.Context, args []string) error {
	operands, err := parse(newFlagSet("create"), args, 2, "<id> <name>")
	if err != nil {
		return err
	}
	id, err := utils.ParseUserID(operands[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	services, err := a.signedServices()
	if err != nil {
		return err
	}

	account, err := services.LedgerService.CreateUser(ctx, models.CreateUserRequest{ID: id, Name: operands[1]})
	if err != nil {
		return err
	}

	a.ui.Print(tui.RenderAccount(account))
	return nil
}

func (a *App) transfer(ctx context.Context, args []string) error {
	operands, err := parse(newFlagSet("transfer"), args, 3, "<sender-id> <receiver-id> <amount>")
	if err != nil {
		return err
	}

	var req models.TransferRequest
	if req.SenderID, err = utils.ParseUserID(operands[0]); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if req.ReceiverID, err = utils.ParseUserID(operands[1]); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if req.Amount, err = utils.ParseAmount(operands[2]); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	services, err := a.signedServices()
	if err != nil {
		return err
	}

	result, err := services.LedgerService.Transfer(ctx, req)
	if err != nil {
		return err
	}

	a.ui.Print(tui.RenderTransfer(result))
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	fs := newFlagSet("remove")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	operands, err := parse(fs, args, 1, "[-yes] <id>")
	if err != nil {
		return err
	}
	id, err := utils.ParseUserID(operands[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if !*yes {
		ok, err := a.ui.Confirm(fmt.Sprintf("Remove account %d? Its deposit is credited to you.", id))
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	services, err := a.signedServices()
	if err != nil {
		return err
	}

	result, err := services.LedgerService.RemoveUser(ctx, models.RemoveUserRequest{ID: id})
	if err != nil {
		return err
	}

	a.ui.Print(tui.RenderRemoved(result))
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	operands, err := parse(newFlagSet("get"), args, 1, "<id>")
	if err != nil {
		return err
	}
	id, err := utils.ParseUserID(operands[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	account, err := a.readOnlyServices().LedgerService.GetUser(ctx, id)
	if err != nil {
		return err
	}

	a.ui.Print(tui.RenderAccount(account))
	return nil
}

// credits shows the refund balance of the given identity, or of the local
// one when none is given.
func (a *App) credits(ctx context.Context, args []string) error {
	fs := newFlagSet("credits")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: credits: %w", ErrUsage, err)
	}

	var identity models.Identity
	switch fs.NArg() {
	case 0:
		signer, err := a.loadSigner()
		if err != nil {
			return err
		}
		identity = signer.Identity()
	case 1:
		var err error
		if identity, err = models.ParseIdentity(fs.Arg(0)); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
	default:
		return fmt.Errorf("%w: credits [identity]", ErrUsage)
	}

	credits, err := a.readOnlyServices().LedgerService.Credits(ctx, identity)
	if err != nil {
		return err
	}

	a.ui.Print(tui.RenderCredits(credits))
	return nil
}

func (a *App) version(ctx context.Context) error {
	serverVersion, err := a.readOnlyServices().LedgerService.ServerVersion(ctx)
	if err != nil {
		a.ui.Print(tui.RenderBuildInfo(a.buildInfo, ""))
		return errors.Join(errors.New("server version unavailable"), err)
	}

	a.ui.Print(tui.RenderBuildInfo(a.buildInfo, serverVersion))
	return nil
}
