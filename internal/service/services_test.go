// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-dabria/internal/config"
	"github.com/MKhiriev/go-dabria/internal/crypto"
	"github.com/MKhiriev/go-dabria/internal/live"
	"github.com/MKhiriev/go-dabria/internal/logger"
	"github.com/MKhiriev/go-dabria/internal/quota"
	"github.com/MKhiriev/go-dabria/internal/store"
	"github.com/MKhiriev/go-dabria/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices wires the services to a migrated in-memory database.
func newTestServices(t *testing.T, limit int64) *Services {
	t.Helper()

	ctx := context.Background()
	hub := live.NewHub(logger.Nop())
	cfg := config.Storage{
		DB:    config.DB{DSN: ":memory:"},
		Quota: config.Quota{LimitBytes: limit},
	}

	storages, err := store.NewClientStorages(ctx, cfg, hub, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	hasher, err := crypto.NewPasswordHasher(crypto.HasherPlain, "")
	require.NoError(t, err)

	return NewServices(storages, hub, hasher, quota.NewPolicy(limit), logger.Nop())
}

func signUp(t *testing.T, s *Services, username string) models.User {
	t.Helper()
	user, err := s.AuthService.SignUp(context.Background(), username, "pw-"+username)
	require.NoError(t, err)
	return user
}

// waitFor reads updates until one satisfies ok.
func waitFor[T any](t *testing.T, sub *live.Subscription[T], ok func(T) bool) T {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case v, open := <-sub.Updates():
			require.True(t, open, "subscription closed")
			if ok(v) {
				return v
			}
		case <-deadline:
			t.Fatal("expected update did not arrive")
		}
	}
}

func TestServices_SignUpIsUnique(t *testing.T) {
	s := newTestServices(t, 0)
	ctx := context.Background()

	first, err := s.AuthService.SignUp(ctx, "x", "p1")
	require.NoError(t, err)

	_, err = s.AuthService.SignUp(ctx, "x", "p2")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// the first password still works, the second was never stored
	user, err := s.AuthService.SignIn(ctx, "x", "p1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)

	_, err = s.AuthService.SignIn(ctx, "x", "p2")
	assert.ErrorIs(t, err, ErrAuthFailure)
}

func TestServices_SignInFailuresLookAlike(t *testing.T) {
	s := newTestServices(t, 0)
	ctx := context.Background()
	signUp(t, s, "x")

	_, errWrong := s.AuthService.SignIn(ctx, "x", "wrong")
	_, errMissing := s.AuthService.SignIn(ctx, "missing", "anything")

	require.ErrorIs(t, errWrong, ErrAuthFailure)
	require.ErrorIs(t, errMissing, ErrAuthFailure)
	assert.Equal(t, errWrong.Error(), errMissing.Error())
}

func TestServices_ConcurrentSignUpCreatesOneUser(t *testing.T) {
	s := newTestServices(t, 0)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		taken   int
	)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AuthService.SignUp(context.Background(), "same", "pw")

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case assert.ErrorIs(t, err, ErrUsernameTaken):
				taken++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, 4, taken)
}

func TestServices_SaveReplacesPageContent(t *testing.T) {
	s := newTestServices(t, 0)
	ctx := context.Background()
	user := signUp(t, s, "anna")

	first, err := s.JournalService.SaveContent(ctx, user.ID, 2, "a")
	require.NoError(t, err)
	second, err := s.JournalService.SaveContent(ctx, user.ID, 2, "ab")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "ab", second.Content)
	assert.Equal(t, int64(2), second.Size)
	assert.Equal(t, models.UserIDAndPage(user.ID, 2), second.UserIDAndPage)

	usage, err := s.JournalService.Usage(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), usage.UsedBytes, "the old content no longer counts")
}

func TestServices_MultiByteContentCountsBytes(t *testing.T) {
	s := newTestServices(t, 0)
	ctx := context.Background()
	user := signUp(t, s, "anna")

	content := "héllo 日本 🙂"
	entry, err := s.JournalService.SaveContent(ctx, user.ID, 1, content)
	require.NoError(t, err)

	assert.Equal(t, int64(len(content)), entry.Size)
	assert.Greater(t, entry.Size, int64(len([]rune(content))))
}

func TestServices_QuotaBoundary(t *testing.T) {
	s := newTestServices(t, 10)
	ctx := context.Background()
	user := signUp(t, s, "anna")

	_, err := s.JournalService.SaveContent(ctx, user.ID, 1, "12345")
	require.NoError(t, err)

	// exactly at the limit
	_, err = s.JournalService.SaveContent(ctx, user.ID, 2, "67890")
	require.NoError(t, err)

	// one byte over, replacing page 2
	_, err = s.JournalService.SaveContent(ctx, user.ID, 2, "678901")
	require.ErrorIs(t, err, ErrQuotaExceeded)

	sub, err := s.JournalService.SubscribeToPage(ctx, user.ID, 2)
	require.NoError(t, err)
	defer sub.Close()

	got := waitFor(t, sub, func(e *models.Entry) bool { return e != nil })
	assert.Equal(t, "67890", got.Content, "the rejected write left the page unchanged")

	// shrinking is always allowed
	_, err = s.JournalService.SaveContent(ctx, user.ID, 2, strings.Repeat("x", 5))
	assert.NoError(t, err)
}

func TestServices_SubscriptionsFollowWrites(t *testing.T) {
	s := newTestServices(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	anna := signUp(t, s, "anna")
	ben := signUp(t, s, "ben")

	page, err := s.JournalService.SubscribeToPage(ctx, anna.ID, 1)
	require.NoError(t, err)
	usage, err := s.JournalService.SubscribeToUsage(ctx, anna.ID)
	require.NoError(t, err)

	assert.Nil(t, waitFor(t, page, func(*models.Entry) bool { return true }))
	assert.Equal(t, int64(0), waitFor(t, usage, func(int64) bool { return true }))

	_, err = s.JournalService.SaveContent(ctx, anna.ID, 1, "dear diary")
	require.NoError(t, err)

	got := waitFor(t, page, func(e *models.Entry) bool { return e != nil })
	assert.Equal(t, "dear diary", got.Content)
	assert.Equal(t, int64(len("dear diary")), waitFor(t, usage, func(n int64) bool { return n > 0 }))

	// ben's writes never show up in anna's streams
	_, err = s.JournalService.SaveContent(ctx, ben.ID, 1, "other")
	require.NoError(t, err)
	_, err = s.JournalService.SaveContent(ctx, anna.ID, 3, "xyz")
	require.NoError(t, err)
	assert.Equal(t, int64(len("dear diary")+3), waitFor(t, usage, func(n int64) bool { return n != int64(len("dear diary")) }))
}

func TestServices_RejectsInvalidPage(t *testing.T) {
	s := newTestServices(t, 0)
	user := signUp(t, s, "anna")

	_, err := s.JournalService.SaveContent(context.Background(), user.ID, 4, "x")
	assert.ErrorIs(t, err, ErrInvalidPage)
}
