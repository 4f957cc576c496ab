// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"

	"github.com/MKhiriev/go-points-ledger/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the context key of the verified signer token.
var TokenCtxKey = contextKey("signerToken")

// WithToken returns a copy of ctx carrying token.
func WithToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// TokenFromContext returns the verified signer token stored in ctx.
func TokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
