// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/service"
	"github.com/MKhiriev/go-points-ledger/internal/store"
	"github.com/MKhiriev/go-points-ledger/models"
)

const (
	testAudience = "ledger-test"
	testIssuer   = "ledgerctl"
	testVersion  = "1.2.3"
)

func newTestSigner(t *testing.T) *auth.Signer {
	t.Helper()
	_, key, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	signer, err := auth.NewSigner(key, testIssuer, testAudience, time.Minute)
	require.NoError(t, err)
	return signer
}

func newTestVerifier() *auth.Verifier {
	return auth.NewVerifier(testAudience, testIssuer, 5*time.Minute)
}

// newLedgerServer wires the real service layer over an in-memory store.
func newLedgerServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.StructuredConfig{
		App:     config.App{Version: testVersion},
		Storage: config.Storage{Rent: config.Rent{LamportsPerByte: 10}},
	}
	services, err := service.NewServices(store.NewMemoryStorage(logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, newTestVerifier(), config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func sign(t *testing.T, s *auth.Signer, op models.Operation) string {
	t.Helper()
	token, err := s.Sign(op)
	require.NoError(t, err)
	return token
}

func decodeError(t *testing.T, data []byte) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp
}

func TestHandler_AliceBobFlow(t *testing.T) {
	srv := newLedgerServer(t)
	alice, bob := newTestSigner(t), newTestSigner(t)

	createAlice := models.CreateUserRequest{ID: 1, Name: "alice"}
	resp, data := do(t, http.MethodPost, srv.URL+"/api/users", sign(t, alice, createAlice.Operation()), createAlice)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	var account models.UserAccount
	require.NoError(t, json.Unmarshal(data, &account))
	assert.Equal(t, models.UserAccount{ID: 1, Owner: alice.Identity(), Name: "alice", Points: 1000}, account)

	createBob := models.CreateUserRequest{ID: 2, Name: "bob"}
	resp, data = do(t, http.MethodPost, srv.URL+"/api/users", sign(t, bob, createBob.Operation()), createBob)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(data))

	transfer := models.TransferRequest{SenderID: 1, ReceiverID: 2, Amount: 300}
	resp, data = do(t, http.MethodPost, srv.URL+"/api/transfers", sign(t, alice, transfer.Operation()), transfer)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var result models.TransferResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, uint16(700), result.Sender.Points)
	assert.Equal(t, uint16(1300), result.Receiver.Points)

	resp, data = do(t, http.MethodGet, srv.URL+"/api/users/2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(data, &account))
	assert.Equal(t, uint16(1300), account.Points)

	remove := models.RemoveUserRequest{ID: 2}
	resp, data = do(t, http.MethodDelete, srv.URL+"/api/users/2", sign(t, bob, remove.Operation()), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var removed models.RemoveResult
	require.NoError(t, json.Unmarshal(data, &removed))
	assert.Equal(t, uint32(2), removed.ID)
	assert.Equal(t, bob.Identity(), removed.Beneficiary)
	assert.Equal(t, store.AccountDeposit(10), removed.Refund)

	resp, data = do(t, http.MethodGet, srv.URL+"/api/credits/"+bob.Identity().String(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var credits models.CreditsResponse
	require.NoError(t, json.Unmarshal(data, &credits))
	assert.Equal(t, removed.Refund, credits.Amount)

	resp, data = do(t, http.MethodGet, srv.URL+"/api/users/2", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 6005, decodeError(t, data).Code)
}

func TestHandler_LedgerRejections(t *testing.T) {
	srv := newLedgerServer(t)
	alice, bob := newTestSigner(t), newTestSigner(t)

	for _, tc := range []struct {
		signer *auth.Signer
		req    models.CreateUserRequest
	}{
		{alice, models.CreateUserRequest{ID: 1, Name: "alice"}},
		{bob, models.CreateUserRequest{ID: 2, Name: "bob"}},
	} {
		resp, _ := do(t, http.MethodPost, srv.URL+"/api/users", sign(t, tc.signer, tc.req.Operation()), tc.req)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	tests := []struct {
		name       string
		signer     *auth.Signer
		transfer   models.TransferRequest
		wantStatus int
		wantCode   int
	}{
		{
			name:       "zero amount",
			signer:     alice,
			transfer:   models.TransferRequest{SenderID: 1, ReceiverID: 2, Amount: 0},
			wantStatus: http.StatusBadRequest,
			wantCode:   6001,
		},
		{
			name:       "not enough points",
			signer:     alice,
			transfer:   models.TransferRequest{SenderID: 1, ReceiverID: 2, Amount: 1001},
			wantStatus: http.StatusConflict,
			wantCode:   6003,
		},
		{
			name:       "signer does not own sender",
			signer:     bob,
			transfer:   models.TransferRequest{SenderID: 1, ReceiverID: 2, Amount: 1},
			wantStatus: http.StatusForbidden,
			wantCode:   6007,
		},
		{
			name:       "same account",
			signer:     alice,
			transfer:   models.TransferRequest{SenderID: 1, ReceiverID: 1, Amount: 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   6006,
		},
		{
			name:       "unknown receiver",
			signer:     alice,
			transfer:   models.TransferRequest{SenderID: 1, ReceiverID: 9, Amount: 1},
			wantStatus: http.StatusNotFound,
			wantCode:   6005,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := do(t, http.MethodPost, srv.URL+"/api/transfers", sign(t, tt.signer, tt.transfer.Operation()), tt.transfer)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCode, decodeError(t, data).Code)
		})
	}

	t.Run("name too long", func(t *testing.T) {
		req := models.CreateUserRequest{ID: 3, Name: "abcdefghijk"}
		resp, data := do(t, http.MethodPost, srv.URL+"/api/users", sign(t, alice, req.Operation()), req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, 6004, decodeError(t, data).Code)
	})

	t.Run("account already exists", func(t *testing.T) {
		req := models.CreateUserRequest{ID: 1, Name: "again"}
		resp, _ := do(t, http.MethodPost, srv.URL+"/api/users", sign(t, bob, req.Operation()), req)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("remove by non owner", func(t *testing.T) {
		req := models.RemoveUserRequest{ID: 1}
		resp, data := do(t, http.MethodDelete, srv.URL+"/api/users/1", sign(t, bob, req.Operation()), nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, 6007, decodeError(t, data).Code)
	})
}

func TestHandler_TokenRejections(t *testing.T) {
	srv := newLedgerServer(t)
	alice := newTestSigner(t)

	req := models.CreateUserRequest{ID: 1, Name: "alice"}
	otherAudience, err := auth.NewSigner(ed25519.NewKeyFromSeed(bytes.Repeat([]byte{7}, ed25519.SeedSize)), testIssuer, "elsewhere", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
		{name: "other audience", token: sign(t, otherAudience, req.Operation())},
		{name: "token for another operation", token: sign(t, alice, models.CreateUserRequest{ID: 2, Name: "alice"}.Operation())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := do(t, http.MethodPost, srv.URL+"/api/users", tt.token, req)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.NotEmpty(t, decodeError(t, data).Error)
		})
	}

	t.Run("token replayed on another route", func(t *testing.T) {
		token := sign(t, alice, req.Operation())
		resp, _ := do(t, http.MethodDelete, srv.URL+"/api/users/1", token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestHandler_BadInput(t *testing.T) {
	srv := newLedgerServer(t)
	alice := newTestSigner(t)

	t.Run("malformed body", func(t *testing.T) {
		httpReq, err := http.NewRequest(http.MethodPost, srv.URL+"/api/transfers", bytes.NewBufferString("{"))
		require.NoError(t, err)
		httpReq.Header.Set("Authorization", "Bearer "+sign(t, alice, models.TransferRequest{}.Operation()))

		resp, err := http.DefaultClient.Do(httpReq)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	for _, path := range []string{"/api/users/abc", "/api/users/-1", "/api/credits/zz"} {
		t.Run(path, func(t *testing.T) {
			resp, _ := do(t, http.MethodGet, srv.URL+path, "", nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandler_Version(t *testing.T) {
	srv := newLedgerServer(t)

	resp, data := do(t, http.MethodGet, srv.URL+"/api/version/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testVersion, string(data))
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
}

func TestHandler_MethodNotAllowedIsNotFound(t *testing.T) {
	srv := newLedgerServer(t)

	resp, data := do(t, http.MethodPut, srv.URL+"/api/transfers", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusNotFound), decodeError(t, data).Error)
}
