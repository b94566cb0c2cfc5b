// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownHasher    = errors.New("unknown password hasher")
	ErrMissingHashKey   = errors.New("password hash key is empty")
	ErrMalformedHash    = errors.New("malformed password hash")
	ErrIncompatibleHash = errors.New("incompatible password hash")
)

// NewPasswordHasher returns the strategy registered under name. An empty name
// selects argon2id. key is only used by the hmac-sha256 strategy.
func NewPasswordHasher(name, key string) (PasswordHasher, error) {
	switch name {
	case HasherPlain:
		return plainHasher{}, nil
	case HasherHMACSHA256:
		if key == "" {
			return nil, ErrMissingHashKey
		}
		return &hmacHasher{key: key}, nil
	case HasherArgon2id, "":
		return NewArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
}
