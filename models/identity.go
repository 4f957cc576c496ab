// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
)

// IdentitySize is the length in bytes of an [Identity].
const IdentitySize = 32

// ErrInvalidIdentity is returned when a textual identity cannot be decoded
// into exactly [IdentitySize] bytes.
var ErrInvalidIdentity = errors.New("invalid identity")

// Identity is a fixed-size public-key-like value naming a principal.
//
// The zero value is the "empty" identity: it is never the owner of a live
// account and is used to detect accounts that were never created or were
// already removed.
type Identity [IdentitySize]byte

// ZeroIdentity is the default/empty identity.
var ZeroIdentity Identity

// IdentityFromPublicKey converts an Ed25519 public key into an [Identity].
func IdentityFromPublicKey(pub ed25519.PublicKey) (Identity, error) {
	var id Identity
	if len(pub) != ed25519.PublicKeySize {
		return id, fmt.Errorf("%w: public key has %d bytes", ErrInvalidIdentity, len(pub))
	}
	copy(id[:], pub)
	return id, nil
}

// ParseIdentity decodes a hex-encoded identity.
func ParseIdentity(s string) (Identity, error) {
	var id Identity
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
	}
	if len(raw) != IdentitySize {
		return id, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidIdentity, IdentitySize, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}

// IsZero reports whether id is the empty identity.
func (id Identity) IsZero() bool {
	return id == ZeroIdentity
}

// PublicKey returns id as an Ed25519 public key.
func (id Identity) PublicKey() ed25519.PublicKey {
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, id[:])
	return pub
}

// String returns the lowercase hex form of id.
func (id Identity) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText implements [encoding.TextMarshaler].
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
