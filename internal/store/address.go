// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/MKhiriev/go-points-ledger/models"
)

// slotSeed namespaces account slots.
const slotSeed = "user"

// SlotAddress derives the storage slot of account id. The mapping is
// deterministic and injective: sha256("user" || id as u32 little-endian).
func SlotAddress(id uint32) models.Slot {
	buf := make([]byte, 0, len(slotSeed)+4)
	buf = append(buf, slotSeed...)
	buf = binary.LittleEndian.AppendUint32(buf, id)
	return models.Slot(sha256.Sum256(buf))
}
