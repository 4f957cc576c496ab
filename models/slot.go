// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"fmt"
)

// Slot is the storage location of an account record. Slots are derived from
// account ids by the addressing scheme in the store package; two records are
// the same record exactly when their slots are equal.
type Slot [32]byte

// ParseSlot decodes a hex-encoded slot.
func ParseSlot(s string) (Slot, error) {
	var slot Slot
	raw, err := hex.DecodeString(s)
	if err != nil {
		return slot, fmt.Errorf("invalid slot: %w", err)
	}
	if len(raw) != len(slot) {
		return slot, fmt.Errorf("invalid slot: expected %d bytes, got %d", len(slot), len(raw))
	}
	copy(slot[:], raw)
	return slot, nil
}

// String returns the lowercase hex form of s.
func (s Slot) String() string {
	return hex.EncodeToString(s[:])
}

// MarshalText implements [encoding.TextMarshaler].
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Slot) UnmarshalText(text []byte) error {
	parsed, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
