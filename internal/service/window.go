// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import "github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"

// FilterWindow reduces an ordered listing to the pagination window described
// by query, treating the listing as a sequence: skip offset entries, then
// take limit entries when a limit is set. An explicit limit of zero yields
// zero entries. Note this differs from the plain-names strategy's inline
// counter, where limit zero means unbounded; both behaviors are preserved
// as observed.
func FilterWindow(result *model.ListingResult, query *model.ListingQuery) *model.ListingResult {
	if query == nil {
		return result
	}

	offset := query.OffsetOr(0)
	if offset < 0 {
		offset = 0
	}

	filtered := model.NewListingResult()
	for i, entry := range result.Entries() {
		if i < offset {
			continue
		}
		if query.HasLimit() && filtered.Len() >= query.LimitOr(0) {
			break
		}
		filtered.Put(entry.Key, entry.Value)
	}

	return filtered
}
