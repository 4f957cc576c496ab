// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-points-ledger/internal/auth"
	"github.com/MKhiriev/go-points-ledger/internal/ledger"
	"github.com/MKhiriev/go-points-ledger/internal/logger"
	"github.com/MKhiriev/go-points-ledger/internal/utils"
)

// Metadata keys used by the ledger service.
const (
	AuthorizationKey = "authorization"
	TraceIDKey       = "x-trace-id"
	LedgerCodeKey    = "ledger-code"
)

// publicMethods can be called without a signer token.
var publicMethods = map[string]bool{
	MethodGetUser: true,
	MethodCredits: true,
	MethodVersion: true,
}

func firstValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// withTraceID tags the call with the caller's trace id or a new one and
// returns it in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstValue(ctx, TraceIDKey)
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	ctx = h.logger.WithTraceID(traceID).WithContext(ctx)
	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDKey, traceID))

	return handler(ctx, req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// withErrorStatus converts service errors into gRPC statuses. Internal
// failures are reported without details.
func (h *Handler) withErrorStatus(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err == nil {
		return resp, nil
	}
	if _, ok := status.FromError(err); ok {
		return nil, err
	}

	if code := ledger.Code(err); code != 0 {
		_ = grpc.SetTrailer(ctx, metadata.Pairs(LedgerCodeKey, strconv.Itoa(code)))
	}

	c := codeFromError(err)
	msg := err.Error()
	if c == codes.Internal {
		logger.FromContext(ctx).Err(err).Str("method", info.FullMethod).Msg("call failed")
		msg = "internal error"
	}

	return nil, status.Error(c, msg)
}

// withAuth verifies the signer token of non-public methods and stores it in
// the call context. Whether the token covers the requested operation is
// checked by the method itself.
func (h *Handler) withAuth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	tokenString, err := auth.ParseBearerToken(firstValue(ctx, AuthorizationKey))
	if err != nil {
		return nil, err
	}

	token, err := h.verifier.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx).With().Str("signer", token.Signer.String()).Logger()
	ctx = auth.WithToken(log.WithContext(ctx), token)

	return handler(ctx, req)
}
