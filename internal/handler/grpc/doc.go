// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the ledger over gRPC.
//
// Messages are the JSON-tagged types of package models, carried by a JSON
// codec, so the service needs no generated protobuf code. Signed calls carry
// the signer token in the "authorization" metadata as "Bearer <token>".
// Ledger rule violations additionally report their numeric code in the
// "ledger-code" trailer.
package grpc
