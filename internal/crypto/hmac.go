// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-dabria/internal/utils"
)

// hmacHasher stores hex(HMAC-SHA256(key, password)). It is deterministic, so
// the key is what keeps a leaked database from being useful on its own.
type hmacHasher struct {
	key string
}

func (h *hmacHasher) Hash(password string) (string, error) {
	return utils.HashString(password, h.key), nil
}

func (h *hmacHasher) Compare(stored, password string) (bool, error) {
	want, err := hex.DecodeString(stored)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	got, _ := hex.DecodeString(utils.HashString(password, h.key))
	return hmac.Equal(want, got), nil
}
