// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the journal shows to its
// user.
//
// All Msg* constants are complete sentences rendered inline on a screen.
// Keeping them in one place ensures consistent wording throughout the UI.
package app

import (
	"errors"

	"github.com/MKhiriev/go-dabria/internal/service"
)

const (
	// MsgInvalidUsernameOrPassword is shown for every failed sign-in, whether
	// the username is unknown or the password is wrong.
	MsgInvalidUsernameOrPassword = "Invalid username or password"

	// MsgUsernameAlreadyExists is shown when signing up with a username that
	// is already registered.
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgInvalidCredentials is shown when the username or password on the
	// sign-up form is empty or too long.
	MsgInvalidCredentials = "Username and password are required (up to 64 and 256 characters)"

	// MsgQuotaExceeded is shown when a page could not be saved because the
	// journal is full. The typed text stays in the editor.
	MsgQuotaExceeded = "Storage is full: this change was not saved"

	// MsgInvalidPage is shown for a page outside the journal.
	MsgInvalidPage = "This page does not exist"

	// MsgStorageUnavailable is shown when the local database cannot be used.
	MsgStorageUnavailable = "The journal storage is unavailable, please try again"

	// MsgSomethingWentWrong is shown for any other error.
	MsgSomethingWentWrong = "Something went wrong"
)

// MessageFor returns the message to show for err, or "" for a nil error.
func MessageFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrAuthFailure):
		return MsgInvalidUsernameOrPassword
	case errors.Is(err, service.ErrUsernameTaken):
		return MsgUsernameAlreadyExists
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, service.ErrQuotaExceeded):
		return MsgQuotaExceeded
	case errors.Is(err, service.ErrInvalidPage):
		return MsgInvalidPage
	case errors.Is(err, service.ErrStorageUnavailable):
		return MsgStorageUnavailable
	default:
		return MsgSomethingWentWrong
	}
}
