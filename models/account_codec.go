// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
)

const discriminatorSize = 8

// accountDiscriminator prefixes every encoded account so that bytes of a
// different record type are never decoded as a UserAccount.
var accountDiscriminator = func() [discriminatorSize]byte {
	var d [discriminatorSize]byte
	sum := sha256.Sum256([]byte("account:UserAccount"))
	copy(d[:], sum[:discriminatorSize])
	return d
}()

// Errors returned by [UserAccount.UnmarshalBinary].
var (
	ErrAccountDataTooShort          = errors.New("account data too short")
	ErrAccountDiscriminatorMismatch = errors.New("account discriminator mismatch")
	ErrAccountNameTooLong           = errors.New("encoded account name too long")
)

// MarshalBinary encodes a in the fixed field order
// id (u32 LE), owner (32 bytes), name (u32 LE length + bytes), points (u16 LE),
// preceded by an 8-byte type discriminator.
func (a UserAccount) MarshalBinary() ([]byte, error) {
	if len(a.Name) > MaxNameLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrAccountNameTooLong, len(a.Name))
	}

	buf := make([]byte, 0, AccountSpace)
	buf = append(buf, accountDiscriminator[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, a.ID)
	buf = append(buf, a.Owner[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(a.Name)))
	buf = append(buf, a.Name...)
	buf = binary.LittleEndian.AppendUint16(buf, a.Points)

	return buf, nil
}

// UnmarshalBinary decodes data produced by [UserAccount.MarshalBinary].
// Trailing bytes after the points field are ignored, so a record read back
// from a zero-padded slot of [AccountSpace] bytes decodes cleanly.
func (a *UserAccount) UnmarshalBinary(data []byte) error {
	const fixedHead = discriminatorSize + 4 + IdentitySize + 4

	if len(data) < fixedHead {
		return fmt.Errorf("%w: %d bytes", ErrAccountDataTooShort, len(data))
	}
	if !bytes.Equal(data[:discriminatorSize], accountDiscriminator[:]) {
		return ErrAccountDiscriminatorMismatch
	}

	var decoded UserAccount
	off := discriminatorSize

	decoded.ID = binary.LittleEndian.Uint32(data[off:])
	off += 4

	copy(decoded.Owner[:], data[off:off+IdentitySize])
	off += IdentitySize

	nameLen := binary.LittleEndian.Uint32(data[off:])
	off += 4
	if nameLen > MaxNameLength {
		return fmt.Errorf("%w: %d bytes", ErrAccountNameTooLong, nameLen)
	}

	if len(data) < off+int(nameLen)+2 {
		return fmt.Errorf("%w: %d bytes", ErrAccountDataTooShort, len(data))
	}
	decoded.Name = string(data[off : off+int(nameLen)])
	off += int(nameLen)

	decoded.Points = binary.LittleEndian.Uint16(data[off:])

	*a = decoded
	return nil
}
