// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateUserRequest asks the ledger to create account ID named Name, owned
// by the signer of the request.
type CreateUserRequest struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// Operation returns the canonical operation the signer must commit to.
func (r CreateUserRequest) Operation() Operation {
	return CreateOperation(r.ID, r.Name)
}

// TransferRequest asks the ledger to move Amount points from SenderID to
// ReceiverID. It must be signed by the sender's owner.
type TransferRequest struct {
	SenderID   uint32 `json:"sender_id"`
	ReceiverID uint32 `json:"receiver_id"`
	Amount     uint16 `json:"amount"`
}

// Operation returns the canonical operation the signer must commit to.
func (r TransferRequest) Operation() Operation {
	return TransferOperation(r.SenderID, r.ReceiverID, r.Amount)
}

// RemoveUserRequest asks the ledger to remove account ID. It must be signed
// by the account owner.
type RemoveUserRequest struct {
	ID uint32 `json:"id"`
}

// Operation returns the canonical operation the signer must commit to.
func (r RemoveUserRequest) Operation() Operation {
	return RemoveOperation(r.ID)
}

// GetUserRequest selects one account for reading.
type GetUserRequest struct {
	ID uint32 `json:"id"`
}

// CreditsRequest selects the refund balance of one identity.
type CreditsRequest struct {
	Identity Identity `json:"identity"`
}
