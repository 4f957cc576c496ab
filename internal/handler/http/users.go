// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-points-ledger/internal/utils"
	"github.com/MKhiriev/go-points-ledger/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err), "*Handler.createUser")
		return
	}

	signer, err := signerFor(r, req.Operation())
	if err != nil {
		writeError(w, r, err, "*Handler.createUser")
		return
	}

	account, err := h.services.LedgerService.CreateUser(r.Context(), signer, req)
	if err != nil {
		writeError(w, r, err, "*Handler.createUser")
		return
	}

	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidPathParam, err), "*Handler.removeUser")
		return
	}

	req := models.RemoveUserRequest{ID: id}
	signer, err := signerFor(r, req.Operation())
	if err != nil {
		writeError(w, r, err, "*Handler.removeUser")
		return
	}

	result, err := h.services.LedgerService.RemoveUser(r.Context(), signer, req)
	if err != nil {
		writeError(w, r, err, "*Handler.removeUser")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidPathParam, err), "*Handler.getUser")
		return
	}

	account, err := h.services.LedgerService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getUser")
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}
