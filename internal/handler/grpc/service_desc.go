// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-points-ledger/models"
)

const serviceName = "ledger.v1.Ledger"

// Full method names of the ledger service.
const (
	MethodCreateUser = "/" + serviceName + "/CreateUser"
	MethodTransfer   = "/" + serviceName + "/Transfer"
	MethodRemoveUser = "/" + serviceName + "/RemoveUser"
	MethodGetUser    = "/" + serviceName + "/GetUser"
	MethodCredits    = "/" + serviceName + "/Credits"
	MethodVersion    = "/" + serviceName + "/Version"
)

// LedgerServer is the server API of the ledger service.
type LedgerServer interface {
	CreateUser(context.Context, *models.CreateUserRequest) (*models.UserAccount, error)
	Transfer(context.Context, *models.TransferRequest) (*models.TransferResult, error)
	RemoveUser(context.Context, *models.RemoveUserRequest) (*models.RemoveResult, error)
	GetUser(context.Context, *models.GetUserRequest) (*models.UserAccount, error)
	Credits(context.Context, *models.CreditsRequest) (*models.CreditsResponse, error)
	Version(context.Context, *models.VersionRequest) (*models.VersionResponse, error)
}

// LedgerServiceDesc describes the ledger service for grpc.Server.
var LedgerServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LedgerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateUser", Handler: unaryHandler(MethodCreateUser, LedgerServer.CreateUser)},
		{MethodName: "Transfer", Handler: unaryHandler(MethodTransfer, LedgerServer.Transfer)},
		{MethodName: "RemoveUser", Handler: unaryHandler(MethodRemoveUser, LedgerServer.RemoveUser)},
		{MethodName: "GetUser", Handler: unaryHandler(MethodGetUser, LedgerServer.GetUser)},
		{MethodName: "Credits", Handler: unaryHandler(MethodCredits, LedgerServer.Credits)},
		{MethodName: "Version", Handler: unaryHandler(MethodVersion, LedgerServer.Version)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger/v1/ledger.json",
}

// unaryHandler adapts a LedgerServer method to the shape grpc.MethodDesc
// expects, running it through the server's interceptor chain.
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(LedgerServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LedgerServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(LedgerServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
