// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"crypto/ed25519"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

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

// startLedger serves the ledger over an in-memory listener and returns a
// client connection to it.
func startLedger(t *testing.T) *grpc.ClientConn {
	t.Helper()

	cfg := config.StructuredConfig{
		App:     config.App{Version: testVersion},
		Storage: config.Storage{Rent: config.Rent{LamportsPerByte: 10}},
	}
	services, err := service.NewServices(store.NewMemoryStorage(logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, auth.NewVerifier(testAudience, testIssuer, 5*time.Minute), logger.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec())),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func signed(t *testing.T, s *auth.Signer, op models.Operation) context.Context {
	t.Helper()
	token, err := s.Sign(op)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), AuthorizationKey, "Bearer "+token)
}

func TestLedgerService_AliceBobFlow(t *testing.T) {
	conn := startLedger(t)
	alice, bob := newTestSigner(t), newTestSigner(t)

	var account models.UserAccount
	createAlice := &models.CreateUserRequest{ID: 1, Name: "alice"}
	require.NoError(t, conn.Invoke(signed(t, alice, createAlice.Operation()), MethodCreateUser, createAlice, &account))
	assert.Equal(t, models.UserAccount{ID: 1, Owner: alice.Identity(), Name: "alice", Points: 1000}, account)

	createBob := &models.CreateUserRequest{ID: 2, Name: "bob"}
	require.NoError(t, conn.Invoke(signed(t, bob, createBob.Operation()), MethodCreateUser, createBob, &account))

	var result models.TransferResult
	transfer := &models.TransferRequest{SenderID: 1, ReceiverID: 2, Amount: 300}
	require.NoError(t, conn.Invoke(signed(t, alice, transfer.Operation()), MethodTransfer, transfer, &result))
	assert.Equal(t, uint16(700), result.Sender.Points)
	assert.Equal(t, uint16(1300), result.Receiver.Points)

	require.NoError(t, conn.Invoke(context.Background(), MethodGetUser, &models.GetUserRequest{ID: 2}, &account))
	assert.Equal(t, uint16(1300), account.Points)

	var removed models.RemoveResult
	remove := &models.RemoveUserRequest{ID: 2}
	require.NoError(t, conn.Invoke(signed(t, bob, remove.Operation()), MethodRemoveUser, remove, &removed))
	assert.Equal(t, bob.Identity(), removed.Beneficiary)
	assert.Equal(t, store.AccountDeposit(10), removed.Refund)

	var credits models.CreditsResponse
	require.NoError(t, conn.Invoke(context.Background(), MethodCredits, &models.CreditsRequest{Identity: bob.Identity()}, &credits))
	assert.Equal(t, removed.Refund, credits.Amount)

	var header metadata.MD
	var version models.VersionResponse
	require.NoError(t, conn.Invoke(context.Background(), MethodVersion, &models.VersionRequest{}, &version, grpc.Header(&header)))
	assert.Equal(t, testVersion, version.Version)
	assert.NotEmpty(t, header.Get(TraceIDKey))
}

func TestLedgerService_Errors(t *testing.T) {
	conn := startLedger(t)
	alice, bob := newTestSigner(t), newTestSigner(t)

	create := &models.CreateUserRequest{ID: 1, Name: "alice"}
	require.NoError(t, conn.Invoke(signed(t, alice, create.Operation()), MethodCreateUser, create, &models.UserAccount{}))

	t.Run("rule violation carries ledger code", func(t *testing.T) {
		var trailer metadata.MD
		transfer := &models.TransferRequest{SenderID: 1, ReceiverID: 2, Amount: 0}
		err := conn.Invoke(signed(t, alice, transfer.Operation()), MethodTransfer, transfer, &models.TransferResult{}, grpc.Trailer(&trailer))

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Equal(t, []string{"6001"}, trailer.Get(LedgerCodeKey))
	})

	t.Run("not the owner", func(t *testing.T) {
		remove := &models.RemoveUserRequest{ID: 1}
		err := conn.Invoke(signed(t, bob, remove.Operation()), MethodRemoveUser, remove, &models.RemoveResult{})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("slot already used", func(t *testing.T) {
		again := &models.CreateUserRequest{ID: 1, Name: "bob"}
		err := conn.Invoke(signed(t, bob, again.Operation()), MethodCreateUser, again, &models.UserAccount{})
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("missing account", func(t *testing.T) {
		err := conn.Invoke(context.Background(), MethodGetUser, &models.GetUserRequest{ID: 42}, &models.UserAccount{})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("missing token", func(t *testing.T) {
		remove := &models.RemoveUserRequest{ID: 1}
		err := conn.Invoke(context.Background(), MethodRemoveUser, remove, &models.RemoveResult{})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("token for another operation", func(t *testing.T) {
		remove := &models.RemoveUserRequest{ID: 1}
		err := conn.Invoke(signed(t, alice, models.RemoveOperation(7)), MethodRemoveUser, remove, &models.RemoveResult{})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestCodeFromError(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{err: auth.ErrTokenExpired, want: codes.Unauthenticated},
		{err: service.ErrAccountAlreadyExists, want: codes.AlreadyExists},
		{err: context.DeadlineExceeded, want: codes.DeadlineExceeded},
		{err: store.ErrExecutingStatement, want: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, codeFromError(tt.err))
		})
	}
}

func TestWithErrorStatus_HidesInternalErrors(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	info := &grpc.UnaryServerInfo{FullMethod: MethodGetUser}

	_, err := h.withErrorStatus(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, store.ErrScanningRow
	})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
}

func TestWithAuth_PublicMethodSkipsToken(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	called := false
	_, err := h.withAuth(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: MethodVersion}, func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}
