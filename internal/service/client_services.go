// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-points-ledger/internal/adapter"
)

type ClientServices struct {
	LedgerService ClientLedgerService
}

// NewClientServices wires the client services. signer may be nil for
// read-only use.
func NewClientServices(serverAdapter adapter.ServerAdapter, signer TokenSigner) *ClientServices {
	return &ClientServices{
		LedgerService: NewClientLedgerService(serverAdapter, signer),
	}
}
