// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/utils"
	"github.com/MKhiriev/go-dabria/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
type userRepository struct {
	db     *DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

// CreateUser persists a new user record. ID and CreatedAt are assigned here
// when the caller leaves them empty.
//
// Uniqueness of the username is enforced by the UNIQUE constraint on
// users.username, so two concurrent sign-ups for the same name cannot both
// succeed: the loser gets [ErrUsernameTaken].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = r.ids.Generate()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.now().UTC()
	}

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username is taken")
			return models.User{}, ErrUsernameTaken
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, dbError(ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByUsername retrieves the user whose username equals username.
// Returns [ErrUserNotFound] when there is none.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, dbError(ErrScanningRow, err)
	}

	return user, nil
}
