// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

const (
	envelopeVersion = 1

	kdfArgon2id = "argon2id"
	kdfNone     = "none"

	saltSize = 16
)

// envelope is the on-disk form of a signing key. Byte fields are base64
// encoded by encoding/json.
type envelope struct {
	Version    int    `json:"version"`
	KDF        string `json:"kdf"`
	Salt       []byte `json:"salt,omitempty"`
	Nonce      []byte `json:"nonce,omitempty"`
	Ciphertext []byte `json:"ciphertext"`
}

// keyStore is the private implementation of [KeyStore].
type keyStore struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	random io.Reader
}

// NewKeyStore constructs a [KeyStore] with the Argon2id parameters
// recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyStore() KeyStore {
	return &keyStore{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		random:       rand.Reader,
	}
}

func (k *keyStore) GenerateKey() (ed25519.PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(k.random)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return priv, nil
}

// Seal stores only the 32-byte seed; the public half is recomputed by Open.
func (k *keyStore) Seal(key ed25519.PrivateKey, passphrase string) ([]byte, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: private key has %d bytes", ErrMalformedEnvelope, len(key))
	}
	seed := key.Seed()

	env := envelope{Version: envelopeVersion, KDF: kdfNone, Ciphertext: seed}
	if passphrase != "" {
		salt := make([]byte, saltSize)
		if _, err := io.ReadFull(k.random, salt); err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}

		gcm, err := k.newGCM(passphrase, salt)
		if err != nil {
			return nil, err
		}

		nonce := make([]byte, gcm.NonceSize())
		if _, err := io.ReadFull(k.random, nonce); err != nil {
			return nil, fmt.Errorf("generate nonce: %w", err)
		}

		env = envelope{
			Version:    envelopeVersion,
			KDF:        kdfArgon2id,
			Salt:       salt,
			Nonce:      nonce,
			Ciphertext: gcm.Seal(nil, nonce, seed, nil),
		}
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal key file: %w", err)
	}
	return data, nil
}

func (k *keyStore) Open(data []byte, passphrase string) (ed25519.PrivateKey, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedEnvelope, env.Version)
	}

	var seed []byte
	switch env.KDF {
	case kdfNone:
		seed = env.Ciphertext
	case kdfArgon2id:
		if passphrase == "" {
			return nil, ErrPassphraseRequired
		}

		gcm, err := k.newGCM(passphrase, env.Salt)
		if err != nil {
			return nil, err
		}
		if len(env.Nonce) != gcm.NonceSize() {
			return nil, fmt.Errorf("%w: nonce has %d bytes", ErrMalformedEnvelope, len(env.Nonce))
		}

		// An authentication failure almost always means a wrong passphrase.
		seed, err = gcm.Open(nil, env.Nonce, env.Ciphertext, nil)
		if err != nil {
			return nil, ErrWrongPassphrase
		}
	default:
		return nil, fmt.Errorf("%w: kdf %q", ErrUnsupportedEnvelope, env.KDF)
	}

	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed has %d bytes", ErrMalformedEnvelope, len(seed))
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

func (k *keyStore) Save(path string, key ed25519.PrivateKey, passphrase string) error {
	data, err := k.Seal(key, passphrase)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create key directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

func (k *keyStore) Load(path, passphrase string) (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	return k.Open(data, passphrase)
}

// newGCM derives the key-encryption key from passphrase and salt and wraps
// it in AES-256-GCM.
func (k *keyStore) newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	if len(salt) != saltSize {
		return nil, fmt.Errorf("%w: salt has %d bytes", ErrMalformedEnvelope, len(salt))
	}

	kek := argon2.IDKey([]byte(passphrase), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
