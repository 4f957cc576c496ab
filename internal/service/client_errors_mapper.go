// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-points-ledger/internal/adapter"
	"github.com/MKhiriev/go-points-ledger/internal/ledger"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Ledger rule violations are returned as the ledger error
// itself so callers can match and print them directly.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var ledgerErr *ledger.Error
	if errors.As(err, &ledgerErr) {
		return ledgerErr
	}

	switch {
	case errors.Is(err, adapter.ErrConflict):
		if strings.Contains(err.Error(), ErrAccountAlreadyExists.Error()) {
			return ErrAccountAlreadyExists
		}
	case errors.Is(err, adapter.ErrUnauthorized):
		return errors.Join(ErrSignatureRejected, err)
	}

	return err
}
