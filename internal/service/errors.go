// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrAccountAlreadyExists  = errors.New("user account already exists")
	ErrNoStorage             = errors.New("no account storage provided")

	ErrNoSigner          = errors.New("no signing key loaded")
	ErrSignatureRejected = errors.New("server rejected the request signature")
)
