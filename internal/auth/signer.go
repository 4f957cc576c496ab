// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/MKhiriev/go-points-ledger/models"
	"github.com/golang-jwt/jwt/v5"
)

// Signer issues signer tokens for one identity.
type Signer struct {
	key      ed25519.PrivateKey
	identity models.Identity
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewSigner returns a Signer for the identity owning key.
func NewSigner(key ed25519.PrivateKey, issuer, audience string, ttl time.Duration) (*Signer, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: private key has %d bytes", ErrInvalidSignerKey, len(key))
	}
	if audience == "" || ttl <= 0 {
		return nil, fmt.Errorf("%w: audience and ttl are required", ErrInvalidSignerKey)
	}

	identity, err := models.IdentityFromPublicKey(key.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignerKey, err)
	}

	return &Signer{
		key:      key,
		identity: identity,
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Identity returns the identity tokens are issued for.
func (s *Signer) Identity() models.Identity {
	return s.identity
}

// Sign returns a compact token committing the signer to op.
func (s *Signer) Sign(op models.Operation) (string, error) {
	now := s.now()
	claims := &models.SignerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   s.identity.String(),
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		OperationDigest: op.Digest(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing token: %w", err)
	}

	return signed, nil
}
