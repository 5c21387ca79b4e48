// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// PlaceholderMarker is the unresolved-template marker. A secret file
// still containing it was copied from an example config rather than
// generated; convergence warns about it but never rewrites it.
const PlaceholderMarker = "CHANGE_ME"

// Password generates a cryptographically random password of exactly
// length characters from the URL-safe base64 alphabet. A failing
// entropy source is a hard error — there is no low-entropy fallback.
func Password(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	// length random bytes base64-encode to more than length
	// characters; truncating the encoding keeps full randomness in
	// every kept character.
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("entropy source unavailable: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw)[:length], nil
}

// KeyMaterial generates 64 bytes of cryptographically random key
// material, hex-encoded. Unlike Password it is never truncated —
// signing keys need the full bit strength.
func KeyMaterial() (string, error) {
	raw := make([]byte, 64)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("entropy source unavailable: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
