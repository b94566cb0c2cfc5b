// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PageContent addresses a single journal page of a user, optionally with the
// text to be written on it.
type PageContent struct {
	UserID     string `validate:"required"`
	PageNumber int    `validate:"min=1,max=3"`
	Content    string
}
