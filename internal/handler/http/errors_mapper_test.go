// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/ledger"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/mock"
	"github.com/MKhiriev/go-points-ledger/internal/service"
	"github.com/MKhiriev/go-points-ledger/internal/store"
	"github.com/MKhiriev/go-points-ledger/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "name too long", err: ledger.ErrNameTooLong, want: http.StatusBadRequest},
		{name: "zero amount", err: ledger.ErrInvalidTransferAmount, want: http.StatusBadRequest},
		{name: "identical accounts", err: ledger.ErrIdenticalAccounts, want: http.StatusBadRequest},
		{name: "underflow", err: ledger.ErrUnderflow, want: http.StatusConflict},
		{name: "overflow", err: ledger.ErrOverflow, want: http.StatusConflict},
		{name: "wrapped missing account", err: fmt.Errorf("user 3: %w", ledger.ErrAccountDoesNotExist), want: http.StatusNotFound},
		{name: "not the owner", err: ledger.ErrUnauthorized, want: http.StatusForbidden},
		{name: "expired token", err: auth.ErrTokenExpired, want: http.StatusUnauthorized},
		{name: "operation mismatch", err: auth.ErrOperationMismatch, want: http.StatusUnauthorized},
		{name: "slot taken", err: service.ErrAccountAlreadyExists, want: http.StatusConflict},
		{name: "bad path", err: fmt.Errorf("%w: x", ErrInvalidPathParam), want: http.StatusBadRequest},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "storage failure", err: store.ErrExecutingQuery, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func newMockedHandler(t *testing.T) (*Handler, *mock.MockLedgerService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ledgerService := mock.NewMockLedgerService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	services := &service.Services{LedgerService: ledgerService, AppInfoService: appInfo}

	return NewHandler(services, newTestVerifier(), config.Server{}, logger.Nop()), ledgerService
}

func TestHandler_InternalErrorIsHidden(t *testing.T) {
	h, ledgerService := newMockedHandler(t)
	ledgerService.EXPECT().
		GetUser(gomock.Any(), uint32(5)).
		Return(models.UserAccount{}, fmt.Errorf("%w: connection reset", store.ErrExecutingQuery))

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/5", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Error)
	assert.Zero(t, body.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestHandler_SignerReachesService(t *testing.T) {
	h, ledgerService := newMockedHandler(t)
	alice := newTestSigner(t)

	req := models.TransferRequest{SenderID: 1, ReceiverID: 2, Amount: 5}
	ledgerService.EXPECT().
		Transfer(gomock.Any(), alice.Identity(), req).
		Return(models.TransferResult{
			Sender:   models.UserAccount{ID: 1, Points: 995},
			Receiver: models.UserAccount{ID: 2, Points: 1005},
		}, nil)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/api/transfers", bytesReader(body))
	httpReq.Header.Set("Authorization", "Bearer "+sign(t, alice, req.Operation()))

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httpReq)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.TransferResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, uint16(995), result.Sender.Points)
}
