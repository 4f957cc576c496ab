// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var (
	// ErrUserQuit is returned when a prompt is cancelled with esc or ctrl+c.
	ErrUserQuit = errors.New("cancelled by user")

	// ErrPassphraseMismatch is returned when the confirmation differs from
	// the passphrase.
	ErrPassphraseMismatch = errors.New("passphrases do not match")
)

// humanizeError rewrites transport failures into a message a user can act
// on. Other errors are returned as is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "ledger server is unreachable"
	}

	return err.Error()
}
