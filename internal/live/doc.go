// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package live turns one-shot queries into streams that stay fresh.
//
// A [Subscription] runs its query once when created and again whenever one
// of the keys it depends on is invalidated through the [Hub]. Writers call
// [Hub.Invalidate] after they commit; readers receive the newest result on
// [Subscription.Updates]. Invalidations that arrive while a query is running
// are coalesced into a single rerun, and a reader that falls behind only ever
// sees the latest value.
package live
