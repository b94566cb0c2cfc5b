// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dabria/internal/crypto"
	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/store"
	"github.com/MKhiriev/go-dabria/internal/validators"
	"github.com/MKhiriev/go-dabria/models"
	"golang.org/x/text/unicode/norm"
)

// authService is the concrete implementation of AuthService.
// It handles sign-up and sign-in using a UserRepository for persistence and
// a PasswordHasher for storing and comparing credentials.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher turns a password into its stored form and checks a password
	// against it. The strategy is chosen by configuration.
	hasher crypto.PasswordHasher

	// validator checks the credential form before anything is stored.
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// The username is normalised to Unicode NFC, so that visually identical names
// typed on different keyboards are the same account. The password is hashed
// with the configured hasher and the user is persisted.
//
// Returns the persisted user (with ID and CreatedAt assigned) or:
//   - ErrInvalidCredentials if the username or password is empty or too long.
//   - ErrUsernameTaken if the username is already in use.
//   - ErrStorageUnavailable if the database cannot be used.
func (a *authService) SignUp(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	creds := newCredentials(username, password)
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Warn().Err(err).
			Str("func", "authService.SignUp").
			Str("username", creds.Username).
			Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	hashed, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).
			Str("func", "authService.SignUp").
			Str("username", creds.Username).
			Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:       creds.Username,
		HashedPassword: hashed,
	})
	if err != nil {
		log.Err(err).
			Str("func", "authService.SignUp").
			Str("username", creds.Username).
			Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	log.Info().
		Str("func", "authService.SignUp").
		Str("user_id", user.ID).
		Msg("user signed up")
	return user, nil
}

// SignIn authenticates an existing user.
//
// Every way of not matching a user collapses into ErrAuthFailure: an input
// that could never have been registered, an unknown username, a wrong
// password and a stored credential the configured hasher cannot read.
// Only database failures are reported differently, as ErrStorageUnavailable.
func (a *authService) SignIn(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	creds := newCredentials(username, password)
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Warn().Err(err).
			Str("func", "authService.SignIn").
			Msg("invalid credentials provided")
		return models.User{}, ErrAuthFailure
	}

	user, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().
				Str("func", "authService.SignIn").
				Str("username", creds.Username).
				Msg("unknown username")
			return models.User{}, ErrAuthFailure
		}
		log.Err(err).
			Str("func", "authService.SignIn").
			Str("username", creds.Username).
			Msg("user search by username failed")
		return models.User{}, mapStoreError(err)
	}

	ok, err := a.hasher.Compare(user.HashedPassword, creds.Password)
	if err != nil {
		log.Err(err).
			Str("func", "authService.SignIn").
			Str("user_id", user.ID).
			Msg("stored credential cannot be compared")
		return models.User{}, ErrAuthFailure
	}
	if !ok {
		log.Warn().
			Str("func", "authService.SignIn").
			Str("user_id", user.ID).
			Msg("wrong password")
		return models.User{}, ErrAuthFailure
	}

	return user, nil
}

func newCredentials(username, password string) models.Credentials {
	return models.Credentials{
		Username: norm.NFC.String(username),
		Password: password,
	}
}
