// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"strings"
	"testing"
)

// cheapArgon2id keeps the tests fast; production parameters are covered by
// TestNewArgon2idHasher_Defaults.
func cheapArgon2id() *Argon2idHasher {
	return &Argon2idHasher{argonTime: 1, argonMemory: 1024, argonThreads: 1, argonKeyLen: 16}
}

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		name    string
		hasher  string
		key     string
		wantErr error
	}{
		{name: "plain", hasher: HasherPlain},
		{name: "hmac with key", hasher: HasherHMACSHA256, key: "k"},
		{name: "hmac without key", hasher: HasherHMACSHA256, wantErr: ErrMissingHashKey},
		{name: "argon2id", hasher: HasherArgon2id},
		{name: "empty defaults to argon2id", hasher: ""},
		{name: "unknown", hasher: "md5", wantErr: ErrUnknownHasher},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewPasswordHasher(tt.hasher, tt.key)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h == nil {
				t.Fatal("hasher is nil")
			}
		})
	}

	h, _ := NewPasswordHasher("", "")
	if _, ok := h.(*Argon2idHasher); !ok {
		t.Fatalf("empty name produced %T, want *Argon2idHasher", h)
	}
}

func TestPasswordHashers_RoundTrip(t *testing.T) {
	hashers := map[string]PasswordHasher{
		HasherPlain:      plainHasher{},
		HasherHMACSHA256: &hmacHasher{key: "secret"},
		HasherArgon2id:   cheapArgon2id(),
	}

	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			stored, err := h.Hash("correct horse")
			if err != nil {
				t.Fatalf("Hash error: %v", err)
			}

			ok, err := h.Compare(stored, "correct horse")
			if err != nil || !ok {
				t.Fatalf("Compare(right) = %v, %v; want true, nil", ok, err)
			}

			ok, err = h.Compare(stored, "correct horsE")
			if err != nil || ok {
				t.Fatalf("Compare(wrong) = %v, %v; want false, nil", ok, err)
			}
		})
	}
}

func TestPlainHasher_StoresVerbatim(t *testing.T) {
	stored, _ := plainHasher{}.Hash("pässword")
	if stored != "pässword" {
		t.Fatalf("stored = %q, want the password itself", stored)
	}
}

func TestHMACHasher_KeyMatters(t *testing.T) {
	a := &hmacHasher{key: "a"}
	b := &hmacHasher{key: "b"}

	stored, _ := a.Hash("pw")
	if ok, _ := b.Compare(stored, "pw"); ok {
		t.Fatal("hash made with key a must not verify with key b")
	}
	if len(stored) != 64 {
		t.Fatalf("hex digest length = %d, want 64", len(stored))
	}
}

func TestHMACHasher_MalformedStored(t *testing.T) {
	_, err := (&hmacHasher{key: "k"}).Compare("not-hex", "pw")
	if !errors.Is(err, ErrMalformedHash) {
		t.Fatalf("err = %v, want ErrMalformedHash", err)
	}
}

func TestArgon2id_SaltedAndEncoded(t *testing.T) {
	h := cheapArgon2id()

	s1, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	s2, _ := h.Hash("same")

	if s1 == s2 {
		t.Fatal("expected different encodings for the same password")
	}
	if !strings.HasPrefix(s1, "$argon2id$v=19$m=1024,t=1,p=1$") {
		t.Fatalf("unexpected encoding: %s", s1)
	}
}

func TestArgon2id_ParametersReadFromStored(t *testing.T) {
	stored, _ := cheapArgon2id().Hash("pw")

	// A hasher with other parameters still verifies old hashes.
	other := &Argon2idHasher{argonTime: 2, argonMemory: 2048, argonThreads: 2, argonKeyLen: 32}
	ok, err := other.Compare(stored, "pw")
	if err != nil || !ok {
		t.Fatalf("Compare = %v, %v; want true, nil", ok, err)
	}
}

func TestArgon2id_MalformedStored(t *testing.T) {
	h := cheapArgon2id()
	cases := []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=x$m=1,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1;t=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=1,t=1,p=1$c2FsdA$",
	}

	for _, stored := range cases {
		if _, err := h.Compare(stored, "pw"); !errors.Is(err, ErrMalformedHash) {
			t.Errorf("Compare(%q) err = %v, want ErrMalformedHash", stored, err)
		}
	}

	_, err := h.Compare("$argon2id$v=16$m=1,t=1,p=1$c2FsdA$a2V5", "pw")
	if !errors.Is(err, ErrIncompatibleHash) {
		t.Fatalf("err = %v, want ErrIncompatibleHash", err)
	}
}

func TestArgon2id_ZeroCostParameters(t *testing.T) {
	h := cheapArgon2id()
	cases := []string{
		"$argon2id$v=19$m=65536,t=0,p=0$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=0,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$a2V5",
	}

	for _, stored := range cases {
		ok, err := h.Compare(stored, "pw")
		if ok || !errors.Is(err, ErrMalformedHash) {
			t.Errorf("Compare(%q) = %v, %v; want false, ErrMalformedHash", stored, ok, err)
		}
	}
}

func TestNewArgon2idHasher_Defaults(t *testing.T) {
	h := NewArgon2idHasher()
	if h.argonTime != 1 || h.argonMemory != 64*1024 || h.argonThreads != 4 || h.argonKeyLen != 32 {
		t.Fatalf("unexpected parameters: %+v", *h)
	}
}
