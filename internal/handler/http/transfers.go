// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-points-ledger/internal/utils"
	"github.com/MKhiriev/go-points-ledger/models"
)

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err), "*Handler.transfer")
		return
	}

	signer, err := signerFor(r, req.Operation())
	if err != nil {
		writeError(w, r, err, "*Handler.transfer")
		return
	}

	result, err := h.services.LedgerService.Transfer(r.Context(), signer, req)
	if err != nil {
		writeError(w, r, err, "*Handler.transfer")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
