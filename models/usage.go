// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Usage is a snapshot of how much of the quota a user occupies.
type Usage struct {
	UsedBytes  int64
	LimitBytes int64
}

// Percent returns the occupied share of the quota in the range [0, 100].
func (u Usage) Percent() float64 {
	if u.LimitBytes <= 0 {
		return 0
	}

	p := float64(u.UsedBytes) / float64(u.LimitBytes) * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// Remaining returns how many bytes can still be written.
func (u Usage) Remaining() int64 {
	if r := u.LimitBytes - u.UsedBytes; r > 0 {
		return r
	}
	return 0
}
