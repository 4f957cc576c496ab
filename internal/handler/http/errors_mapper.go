// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/internal/ledger"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/service"
	"github.com/MKhiriev/go-points-ledger/internal/utils"
)

var errorStatusMap = map[error]int{
	ledger.ErrNameTooLong:           http.StatusBadRequest,
	ledger.ErrInvalidTransferAmount: http.StatusBadRequest,
	ledger.ErrIdenticalAccounts:     http.StatusBadRequest,
	ledger.ErrInsufficientBalance:   http.StatusConflict,
	ledger.ErrOverflow:              http.StatusConflict,
	ledger.ErrAccountDoesNotExist:   http.StatusNotFound,
	ledger.ErrUnauthorized:          http.StatusForbidden,

	auth.ErrMissingToken:      http.StatusUnauthorized,
	auth.ErrInvalidToken:      http.StatusUnauthorized,
	auth.ErrTokenExpired:      http.StatusUnauthorized,
	auth.ErrOperationMismatch: http.StatusUnauthorized,

	service.ErrAccountAlreadyExists: http.StatusConflict,

	ErrInvalidRequestBody: http.StatusBadRequest,
	ErrInvalidPathParam:   http.StatusBadRequest,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes the JSON error body. Storage failures are
// reported without details.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("request failed")
		msg = http.StatusText(http.StatusInternalServerError)
	} else {
		logger.FromRequest(r).Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, msg, ledger.Code(err), status)
}
