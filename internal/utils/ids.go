// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// NewTraceID returns a time-ordered UUIDv7, falling back to a random UUIDv4
// when the clock source fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ParseUserID parses a decimal account id.
func ParseUserID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", s, err)
	}
	return uint32(id), nil
}

// ParseAmount parses a decimal transfer amount.
func ParseAmount(s string) (uint16, error) {
	amount, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return uint16(amount), nil
}
