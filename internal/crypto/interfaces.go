// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/ed25519"

// KeyStore manages the Ed25519 signing key of a ledger client.
//
// The private key never leaves the client. On disk it is kept in a JSON
// envelope sealed with AES-256-GCM under a key derived from the passphrase
// with Argon2id:
//
//	Salt     = random 16 bytes
//	KEK      = Argon2id(passphrase, Salt)
//	Envelope = {salt, nonce, AES-GCM(KEK, nonce, seed)}
type KeyStore interface {
	// GenerateKey creates a fresh Ed25519 key pair from the OS CSPRNG.
	GenerateKey() (ed25519.PrivateKey, error)

	// Seal encodes key into an envelope protected by passphrase. An empty
	// passphrase produces an unencrypted envelope.
	Seal(key ed25519.PrivateKey, passphrase string) ([]byte, error)

	// Open decodes an envelope produced by Seal. A wrong passphrase is
	// reported as ErrWrongPassphrase.
	Open(envelope []byte, passphrase string) (ed25519.PrivateKey, error)

	// Save seals key and writes it to path with owner-only permissions.
	Save(path string, key ed25519.PrivateKey, passphrase string) error

	// Load reads and opens the envelope stored at path.
	Load(path, passphrase string) (ed25519.PrivateKey, error)
}
