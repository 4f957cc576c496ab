// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity(b byte) Identity {
	var id Identity
	for i := range id {
		id[i] = b
	}
	return id
}

// TestUserAccount_MarshalBinary_Layout verifies the fixed field order of the
// encoded record.
func TestUserAccount_MarshalBinary_Layout(t *testing.T) {
	acc := UserAccount{ID: 7, Owner: testIdentity(0xAB), Name: "alice", Points: 1000}

	data, err := acc.MarshalBinary()
	require.NoError(t, err)

	require.Len(t, data, discriminatorSize+4+IdentitySize+4+len("alice")+2)
	assert.Equal(t, accountDiscriminator[:], data[:discriminatorSize])

	off := discriminatorSize
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(data[off:]))
	off += 4
	assert.Equal(t, acc.Owner[:], data[off:off+IdentitySize])
	off += IdentitySize
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(data[off:]))
	off += 4
	assert.Equal(t, "alice", string(data[off:off+5]))
	off += 5
	assert.Equal(t, uint16(1000), binary.LittleEndian.Uint16(data[off:]))
}

// TestUserAccount_BinaryRoundTrip verifies that decoding restores every field,
// including from a zero-padded slot of AccountSpace bytes.
func TestUserAccount_BinaryRoundTrip(t *testing.T) {
	acc := UserAccount{ID: 42, Owner: testIdentity(1), Name: "bob", Points: 65535}

	data, err := acc.MarshalBinary()
	require.NoError(t, err)

	padded := make([]byte, AccountSpace)
	copy(padded, data)

	for name, in := range map[string][]byte{"exact": data, "padded": padded} {
		t.Run(name, func(t *testing.T) {
			var got UserAccount
			require.NoError(t, got.UnmarshalBinary(in))
			assert.Equal(t, acc, got)
		})
	}
}

func TestUserAccount_MarshalBinary_NameTooLong(t *testing.T) {
	_, err := UserAccount{Owner: testIdentity(1), Name: "abcdefghijk"}.MarshalBinary()
	assert.ErrorIs(t, err, ErrAccountNameTooLong)
}

func TestUserAccount_UnmarshalBinary_Errors(t *testing.T) {
	valid, err := UserAccount{ID: 1, Owner: testIdentity(2), Name: "carol", Points: 5}.MarshalBinary()
	require.NoError(t, err)

	wrongDiscriminator := append([]byte(nil), valid...)
	wrongDiscriminator[0] ^= 0xFF

	longName := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(longName[discriminatorSize+4+IdentitySize:], MaxNameLength+1)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "empty", data: nil, wantErr: ErrAccountDataTooShort},
		{name: "truncated head", data: valid[:10], wantErr: ErrAccountDataTooShort},
		{name: "truncated points", data: valid[:len(valid)-1], wantErr: ErrAccountDataTooShort},
		{name: "wrong discriminator", data: wrongDiscriminator, wantErr: ErrAccountDiscriminatorMismatch},
		{name: "name length over limit", data: longName, wantErr: ErrAccountNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var acc UserAccount
			err := acc.UnmarshalBinary(tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, UserAccount{}, acc)
		})
	}
}

func TestAccountSpace(t *testing.T) {
	assert.Equal(t, 60, AccountSpace)
}
