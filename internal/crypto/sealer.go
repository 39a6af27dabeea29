// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals values kept in the device-local credential store.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrEmptySecret is returned by [NewSealer] when no secret is configured.
	ErrEmptySecret = errors.New("empty sealing secret")
	// ErrOpenFailed is returned when a sealed value cannot be decrypted.
	ErrOpenFailed = errors.New("sealed value cannot be opened")
)

// storeSalt domain-separates the credential store key from any other use of
// the same secret.
const storeSalt = "go-vocab-trainer/credential-store/v1"

type aesSealer struct {
	// Argon2id parameters, kept on the struct so tests can lower the cost.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	aead cipher.AEAD
}

// NewSealer derives a 256-bit key from secret with Argon2id (1 pass,
// 64 MiB, 4 lanes) and returns an AES-256-GCM [Sealer].
func NewSealer(secret string) (Sealer, error) {
	return newSealer(secret, 1, 64*1024, 4)
}

func newSealer(secret string, argonTime, argonMemory uint32, argonThreads uint8) (*aesSealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	s := &aesSealer{
		argonTime:    argonTime,
		argonMemory:  argonMemory,
		argonThreads: argonThreads,
		argonKeyLen:  32,
	}

	key := argon2.IDKey([]byte(secret), []byte(storeSalt), s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	s.aead, err = cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return s, nil
}

// Seal implements [Sealer].
func (s *aesSealer) Seal(plain string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := s.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *aesSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrOpenFailed, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plain, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	return string(plain), nil
}
