// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/subtle"

// plainHasher stores the password as is and compares it verbatim.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Compare(stored, password string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, nil
}
