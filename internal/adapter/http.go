// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-points-ledger/internal/config"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/models"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg *config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Str(traceIDHeader, resp.Header().Get(traceIDHeader)).
				Dur("elapsed", resp.Time()).
				Msg("response received")
			return nil
		})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateUser implements [ServerAdapter].
func (h *httpServerAdapter) CreateUser(ctx context.Context, token string, req models.CreateUserRequest) (models.UserAccount, error) {
	var account models.UserAccount

	resp, err := h.signedRequest(ctx, token).
		SetBody(req).
		SetResult(&account).
		Post("/api/users")
	if err != nil {
		return models.UserAccount{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserAccount{}, err
	}

	return account, nil
}

// Transfer implements [ServerAdapter].
func (h *httpServerAdapter) Transfer(ctx context.Context, token string, req models.TransferRequest) (models.TransferResult, error) {
	var result models.TransferResult

	resp, err := h.signedRequest(ctx, token).
		SetBody(req).
		SetResult(&result).
		Post("/api/transfers")
	if err != nil {
		return models.TransferResult{}, fmt.Errorf("transfer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TransferResult{}, err
	}

	return result, nil
}

// RemoveUser implements [ServerAdapter].
func (h *httpServerAdapter) RemoveUser(ctx context.Context, token string, req models.RemoveUserRequest) (models.RemoveResult, error) {
	var result models.RemoveResult

	resp, err := h.signedRequest(ctx, token).
		SetPathParam("id", strconv.FormatUint(uint64(req.ID), 10)).
		SetResult(&result).
		Delete("/api/users/{id}")
	if err != nil {
		return models.RemoveResult{}, fmt.Errorf("remove user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoveResult{}, err
	}

	return result, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, id uint32) (models.UserAccount, error) {
	var account models.UserAccount

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatUint(uint64(id), 10)).
		SetResult(&account).
		Get("/api/users/{id}")
	if err != nil {
		return models.UserAccount{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserAccount{}, err
	}

	return account, nil
}

// Credits implements [ServerAdapter].
func (h *httpServerAdapter) Credits(ctx context.Context, identity models.Identity) (models.CreditsResponse, error) {
	var credits models.CreditsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("identity", identity.String()).
		SetResult(&credits).
		Get("/api/credits/{identity}")
	if err != nil {
		return models.CreditsResponse{}, fmt.Errorf("credits request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreditsResponse{}, err
	}

	return credits, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// signedRequest attaches the signer token as a bearer credential.
func (h *httpServerAdapter) signedRequest(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(token)
}
