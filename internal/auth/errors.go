// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	ErrMissingToken      = errors.New("missing signer token")
	ErrInvalidToken      = errors.New("invalid signer token")
	ErrTokenExpired      = errors.New("signer token expired")
	ErrOperationMismatch = errors.New("signer token was issued for a different operation")
	ErrInvalidSignerKey  = errors.New("invalid signer key")
)
