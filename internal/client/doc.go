// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive journal application runtime.
//
// It runs the sign-in screen, keeps the autosaver running while a user
// writes, and flushes pending pages when the user signs out or quits.
package client
