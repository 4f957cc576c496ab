// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SignerClaims is the claim set of a signer token.
//
// The subject ("sub") is the hex identity of the signer, which is also the
// Ed25519 public key that verifies the token. OperationDigest ("op") binds
// the token to a single [Operation].
type SignerClaims struct {
	jwt.RegisteredClaims

	// OperationDigest is the hex SHA-256 of the signed operation.
	OperationDigest string `json:"op"`
}

// Token is a verified signer token.
type Token struct {
	// Signer is the authenticated identity taken from the subject claim.
	Signer Identity `json:"-"`

	// OperationDigest is the operation the signer committed to.
	OperationDigest string `json:"-"`

	// SignedString is the compact JWS form of the token.
	SignedString string `json:"-"`
}

// Authorizes reports whether t was issued for op.
func (t Token) Authorizes(op Operation) bool {
	return t.OperationDigest != "" && t.OperationDigest == op.Digest()
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
