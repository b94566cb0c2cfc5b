// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrAuthFailure is returned by SignIn for an unknown user and for a
	// wrong password alike.
	ErrAuthFailure = errors.New("invalid username or password")

	// ErrUsernameTaken is returned by SignUp when the username is in use.
	ErrUsernameTaken = errors.New("username already exists")

	ErrInvalidCredentials  = errors.New("invalid credentials provided")
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidPage         = errors.New("invalid page number")

	// ErrQuotaExceeded is returned by SaveContent when the write would take
	// the user past the quota. Nothing was written.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrStorageUnavailable is returned when the local database cannot be
	// used at all.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrPasswordHashing = errors.New("error hashing password")
)
