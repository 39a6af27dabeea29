// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// Sealer protects credential store values at rest. It knows nothing about
// keys, sessions or the database; it only turns a plaintext string into an
// opaque sealed string and back.
//
//	sealed = base64(nonce ‖ AES-256-GCM(key, plain))
//	key    = Argon2id(secret, storeSalt)
type Sealer interface {
	// Seal encrypts plain and returns a base64 blob. Sealing the same value
	// twice yields different blobs (random nonce).
	Seal(plain string) (string, error)

	// Open reverses Seal. It fails with [ErrOpenFailed] when the blob was
	// produced under a different secret or has been tampered with.
	Open(sealed string) (string, error)
}
