// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/ledger"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/store"
	"github.com/MKhiriev/go-points-ledger/models"
)

type ledgerService struct {
	storage store.AccountStorage
	ledger  *ledger.Ledger

	// deposit charged for every created account
	deposit uint64

	logger *logger.Logger
}

func NewLedgerService(storage store.AccountStorage, l *ledger.Ledger, rent config.Rent, logger *logger.Logger) (LedgerService, error) {
	if storage == nil {
		return nil, ErrNoStorage
	}

	return &ledgerService{
		storage: storage,
		ledger:  l,
		deposit: store.AccountDeposit(rent.LamportsPerByte),
		logger:  logger,
	}, nil
}

func (s *ledgerService) CreateUser(ctx context.Context, signer models.Identity, req models.CreateUserRequest) (models.UserAccount, error) {
	slot := store.SlotAddress(req.ID)

	var created models.UserAccount
	err := s.storage.WithinTx(ctx, []models.Slot{slot}, func(ctx context.Context, repo store.AccountRepository) error {
		account, err := s.ledger.Create(ctx, req.ID, req.Name, signer)
		if err != nil {
			return err
		}

		if err = repo.Allocate(ctx, slot, signer, s.deposit); err != nil {
			if errors.Is(err, store.ErrSlotAlreadyAllocated) {
				return fmt.Errorf("%w: user %d", ErrAccountAlreadyExists, req.ID)
			}
			return err
		}
		if err = repo.Store(ctx, slot, account); err != nil {
			return err
		}

		created = account
		return nil
	})
	if err != nil {
		return models.UserAccount{}, err
	}

	s.ledger.Created(ctx, created)
	return created, nil
}

func (s *ledgerService) Transfer(ctx context.Context, signer models.Identity, req models.TransferRequest) (models.TransferResult, error) {
	senderSlot := store.SlotAddress(req.SenderID)
	receiverSlot := store.SlotAddress(req.ReceiverID)

	var result models.TransferResult
	err := s.storage.WithinTx(ctx, []models.Slot{senderSlot, receiverSlot}, func(ctx context.Context, repo store.AccountRepository) error {
		sender, err := loadOrEmpty(ctx, repo, senderSlot)
		if err != nil {
			return err
		}
		receiver, err := loadOrEmpty(ctx, repo, receiverSlot)
		if err != nil {
			return err
		}

		from, to, err := s.ledger.Transfer(ctx,
			ledger.Record{Slot: senderSlot, Account: sender},
			ledger.Record{Slot: receiverSlot, Account: receiver},
			signer, req.Amount)
		if err != nil {
			return err
		}

		if err = repo.Store(ctx, from.Slot, from.Account); err != nil {
			return err
		}
		if err = repo.Store(ctx, to.Slot, to.Account); err != nil {
			return err
		}

		result = models.TransferResult{Sender: from.Account, Receiver: to.Account}
		return nil
	})
	if err != nil {
		return models.TransferResult{}, err
	}

	s.ledger.Transferred(ctx, result.Sender, result.Receiver, req.Amount)
	return result, nil
}

func (s *ledgerService) RemoveUser(ctx context.Context, signer models.Identity, req models.RemoveUserRequest) (models.RemoveResult, error) {
	slot := store.SlotAddress(req.ID)

	var result models.RemoveResult
	err := s.storage.WithinTx(ctx, []models.Slot{slot}, func(ctx context.Context, repo store.AccountRepository) error {
		account, err := loadOrEmpty(ctx, repo, slot)
		if err != nil {
			return err
		}

		if err = s.ledger.Remove(ctx, account, signer); err != nil {
			return err
		}

		refund, err := repo.Free(ctx, slot, signer)
		if err != nil {
			return err
		}

		result = models.RemoveResult{ID: req.ID, Refund: refund, Beneficiary: signer}
		return nil
	})
	if err != nil {
		return models.RemoveResult{}, err
	}

	s.ledger.Closed(ctx, req.ID)
	return result, nil
}

func (s *ledgerService) GetUser(ctx context.Context, id uint32) (models.UserAccount, error) {
	account, err := s.storage.Load(ctx, store.SlotAddress(id))
	if err != nil && !errors.Is(err, store.ErrAccountNotFound) {
		return models.UserAccount{}, err
	}
	if !account.Exists() {
		return models.UserAccount{}, fmt.Errorf("%w: user %d", ledger.ErrAccountDoesNotExist, id)
	}

	return account, nil
}

func (s *ledgerService) Credits(ctx context.Context, identity models.Identity) (models.CreditsResponse, error) {
	amount, err := s.storage.Credits(ctx, identity)
	if err != nil {
		return models.CreditsResponse{}, err
	}

	return models.CreditsResponse{Identity: identity, Amount: amount}, nil
}

// loadOrEmpty returns the zero account for a slot that was never allocated,
// which the ledger reports as a missing account.
func loadOrEmpty(ctx context.Context, repo store.AccountRepository, slot models.Slot) (models.UserAccount, error) {
	account, err := repo.Load(ctx, slot)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.UserAccount{}, nil
	}
	return account, err
}
