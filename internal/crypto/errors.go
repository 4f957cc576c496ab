// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrWrongPassphrase     = errors.New("wrong passphrase or corrupted key file")
	ErrPassphraseRequired  = errors.New("key file is encrypted: passphrase required")
	ErrMalformedEnvelope   = errors.New("malformed key file")
	ErrUnsupportedEnvelope = errors.New("unsupported key file version")
)
