// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the sign-in/sign-up form as typed by the user.
type Credentials struct {
	Username string `validate:"required,max=64"`
	Password string `validate:"required,max=256"`
}
