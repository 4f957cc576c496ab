// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-points-ledger/internal/ledger"
	"github.com/MKhiriev/go-points-ledger/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var statusErr error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr = ErrUnauthorized
	case http.StatusForbidden:
		statusErr = ErrForbidden
	case http.StatusNotFound:
		statusErr = ErrNotFound
	case http.StatusConflict:
		statusErr = ErrConflict
	case http.StatusBadGateway:
		statusErr = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr = ErrInternalServerError
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		if ledgerErr := ledger.FromCode(errResp.Code); ledgerErr != nil {
			return fmt.Errorf("%w: %w", statusErr, ledgerErr)
		}
		body = errResp.Error
	}

	return fmt.Errorf("%w: %s", statusErr, body)
}
