// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TransferResult holds both accounts after a successful transfer.
type TransferResult struct {
	Sender   UserAccount `json:"sender"`
	Receiver UserAccount `json:"receiver"`
}

// RemoveResult describes a removed account and the storage deposit that was
// released to the identity performing the removal.
type RemoveResult struct {
	ID          uint32   `json:"id"`
	Refund      uint64   `json:"refund"`
	Beneficiary Identity `json:"beneficiary"`
}

// CreditsResponse is the accumulated refund balance of one identity.
type CreditsResponse struct {
	Identity Identity `json:"identity"`
	Amount   uint64   `json:"amount"`
}

// ErrorResponse is the JSON body of every failed HTTP request.
// Code is the stable ledger error code, or zero for transport errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// VersionRequest is the empty request of the version call.
type VersionRequest struct{}

// VersionResponse carries the server version over transports that cannot
// return plain text.
type VersionResponse struct {
	Version string `json:"version"`
}
