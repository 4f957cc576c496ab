// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-points-ledger/internal/utils"
	"github.com/MKhiriev/go-points-ledger/models"
)

func (h *Handler) getCredits(w http.ResponseWriter, r *http.Request) {
	identity, err := models.ParseIdentity(chi.URLParam(r, "identity"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidPathParam, err), "*Handler.getCredits")
		return
	}

	credits, err := h.services.LedgerService.Credits(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "*Handler.getCredits")
		return
	}

	utils.WriteJSON(w, credits, http.StatusOK)
}
