// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// Names of the available [PasswordHasher] strategies, as accepted by the
// -password-hasher flag and APP_PASSWORD_HASHER.
const (
	HasherPlain      = "plain"
	HasherHMACSHA256 = "hmac-sha256"
	HasherArgon2id   = "argon2id"
)

// PasswordHasher turns a password into the credential that is stored for a
// user and later checks a sign-in attempt against it.
//
// The user repository only ever sees the output of Hash, so strategies can be
// swapped without touching storage.
type PasswordHasher interface {
	// Hash returns the value to persist for password.
	Hash(password string) (string, error)

	// Compare reports whether password matches the stored value. An error is
	// returned only when stored cannot be interpreted by this strategy.
	Compare(stored, password string) (bool, error)
}
