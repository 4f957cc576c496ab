// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transports and the CLI:
// JSON response writing, trace id generation and parsing of numeric account
// ids from text.
package utils
