// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"

	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/internal/ledger"
	"github.com/MKhiriev/go-points-ledger/internal/service"
)

var errorCodeMap = map[error]codes.Code{
	ledger.ErrNameTooLong:           codes.InvalidArgument,
	ledger.ErrInvalidTransferAmount: codes.InvalidArgument,
	ledger.ErrIdenticalAccounts:     codes.InvalidArgument,
	ledger.ErrInsufficientBalance:   codes.FailedPrecondition,
	ledger.ErrOverflow:              codes.FailedPrecondition,
	ledger.ErrAccountDoesNotExist:   codes.NotFound,
	ledger.ErrUnauthorized:          codes.PermissionDenied,

	auth.ErrMissingToken:      codes.Unauthenticated,
	auth.ErrInvalidToken:      codes.Unauthenticated,
	auth.ErrTokenExpired:      codes.Unauthenticated,
	auth.ErrOperationMismatch: codes.Unauthenticated,

	service.ErrAccountAlreadyExists: codes.AlreadyExists,

	context.DeadlineExceeded: codes.DeadlineExceeded,
	context.Canceled:         codes.Canceled,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}
