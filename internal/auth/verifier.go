// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-points-ledger/models"
	"github.com/golang-jwt/jwt/v5"
)

const clockSkew = 5 * time.Second

// Verifier checks signer tokens presented to the ledger.
type Verifier struct {
	audience string
	issuer   string
	maxAge   time.Duration
	now      func() time.Time
}

// NewVerifier returns a Verifier accepting tokens for audience whose lifetime
// does not exceed maxAge. An empty issuer accepts any issuer.
func NewVerifier(audience, issuer string, maxAge time.Duration) *Verifier {
	return &Verifier{
		audience: audience,
		issuer:   issuer,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Verify checks the signature and registered claims of tokenString and
// returns the authenticated token.
func (v *Verifier) Verify(tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &models.SignerClaims{}
	var signer models.Identity
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		sub, err := token.Claims.GetSubject()
		if err != nil {
			return nil, err
		}
		signer, err = models.ParseIdentity(sub)
		if err != nil {
			return nil, err
		}
		return signer.PublicKey(), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.IssuedAt == nil {
		return models.Token{}, fmt.Errorf("%w: missing iat claim", ErrInvalidToken)
	}
	if lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time); v.maxAge > 0 && lifetime > v.maxAge {
		return models.Token{}, fmt.Errorf("%w: lifetime %s exceeds %s", ErrInvalidToken, lifetime, v.maxAge)
	}
	if claims.OperationDigest == "" {
		return models.Token{}, fmt.Errorf("%w: missing op claim", ErrInvalidToken)
	}

	return models.Token{
		Signer:          signer,
		OperationDigest: claims.OperationDigest,
		SignedString:    tokenString,
	}, nil
}

// Authorize returns the signer of token when it was issued for op.
func Authorize(token models.Token, op models.Operation) (models.Identity, error) {
	if !token.Authorizes(op) {
		return models.ZeroIdentity, ErrOperationMismatch
	}
	return token.Signer, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) == 0 {
		return "", ErrMissingToken
	}
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("%w: malformed authorization header", ErrInvalidToken)
	}
	return parts[1], nil
}
