// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/models"
)

// auth verifies the signer token of the request and stores it in the
// request context. Whether the token covers the requested operation is
// checked by the handler once the request has been decoded.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := auth.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		token, err := h.verifier.Verify(tokenString)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		log := logger.FromRequest(r).With().Str("signer", token.Signer.String()).Logger()
		ctx := auth.WithToken(log.WithContext(r.Context()), token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// signerFor returns the authenticated signer if its token was issued for op.
func signerFor(r *http.Request, op models.Operation) (models.Identity, error) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		return models.ZeroIdentity, auth.ErrMissingToken
	}
	return auth.Authorize(token, op)
}
