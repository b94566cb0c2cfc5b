// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package quota decides whether a user may store more text.
//
// A user's footprint is the sum of the sizes of all their entries. A write
// is admitted when the footprint after the write stays within the limit;
// the size of the entry being replaced is subtracted first, so editing a
// page is judged by its net change only.
package quota

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dabria/models"
)

// DefaultLimit is the per-user ceiling: 512 MiB of UTF-8 encoded text.
const DefaultLimit int64 = 512 * 1024 * 1024

// Policy is the pure admission rule for a fixed limit.
type Policy struct {
	Limit int64
}

// NewPolicy returns a Policy for limit, falling back to DefaultLimit when
// limit is not positive.
func NewPolicy(limit int64) Policy {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Policy{Limit: limit}
}

// Fits reports whether used - replacing + candidate <= Limit.
func (p Policy) Fits(used, candidate, replacing int64) bool {
	return used-replacing+candidate <= p.Limit
}

// SizeReader reports the summed entry size of a user.
type SizeReader interface {
	TotalSize(ctx context.Context, userID string) (int64, error)
}

// Accountant combines a Policy with live size data.
type Accountant struct {
	policy Policy
	sizes  SizeReader
}

// NewAccountant creates an Accountant reading sizes from sizes.
func NewAccountant(policy Policy, sizes SizeReader) *Accountant {
	return &Accountant{policy: policy, sizes: sizes}
}

// Limit returns the ceiling in bytes.
func (a *Accountant) Limit() int64 {
	return a.policy.Limit
}

// UsedBytes returns the sum of entry sizes owned by userID.
func (a *Accountant) UsedBytes(ctx context.Context, userID string) (int64, error) {
	used, err := a.sizes.TotalSize(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("read used bytes: %w", err)
	}
	return used, nil
}

// Admit reports whether userID may write candidateSize bytes in place of an
// entry currently holding replacingSize bytes (0 for a new page).
//
// Admit reads the used bytes outside any write transaction, so its answer is
// advisory: a concurrent write can change it before the caller acts. Writers
// that must hold the limit check [Policy.Fits] inside their own transaction,
// as the entry repository does.
func (a *Accountant) Admit(ctx context.Context, userID string, candidateSize, replacingSize int64) (bool, error) {
	used, err := a.UsedBytes(ctx, userID)
	if err != nil {
		return false, err
	}
	return a.policy.Fits(used, candidateSize, replacingSize), nil
}

// Usage returns the current footprint of userID against the limit.
func (a *Accountant) Usage(ctx context.Context, userID string) (models.Usage, error) {
	used, err := a.UsedBytes(ctx, userID)
	if err != nil {
		return models.Usage{}, err
	}
	return models.Usage{UsedBytes: used, LimitBytes: a.policy.Limit}, nil
}
