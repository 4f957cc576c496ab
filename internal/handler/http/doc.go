// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the ledger.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as signer authentication, request tracing,
// access logging, response compression and request deadlines are handled in
// this package before requests are delegated to the service layer.
//
// Mutating routes require an "Authorization: Bearer <token>" header carrying
// a signer token. The auth middleware only checks the token itself; each
// handler then checks that the token was issued for the exact operation in
// the request body.
package http
