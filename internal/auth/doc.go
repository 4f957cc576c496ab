// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth issues and verifies signer tokens.
//
// A signer token is a compact JWT signed with EdDSA by the Ed25519 key of the
// identity performing an operation. The subject claim is the hex identity,
// so the verifier needs no key registry: the public key that checks the
// signature is the identity itself. The custom "op" claim binds the token to
// exactly one canonical [models.Operation].
package auth
