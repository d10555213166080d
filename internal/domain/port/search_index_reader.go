// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package port defines the interfaces for external dependencies and adapters.
package port

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"
)

// SearchIndexReader defines the behavior for search index read operations
// This abstraction allows different search implementations (OpenSearch, etc.)
// without the domain layer knowing about specific implementations
type SearchIndexReader interface {
	// QueryThemes returns the themes visible to the caller described by the
	// criteria, sorted ascending by theme name
	QueryThemes(ctx context.Context, criteria model.ThemeSearchCriteria) ([]model.Theme, error)

	// DistinctTerms returns the distinct values present in the index for the
	// given field across all documents of the given type. No ordering is
	// guaranteed; callers sort.
	DistinctTerms(ctx context.Context, field, documentType string) ([]string, error)

	// IsReady checks if the search index is ready
	IsReady(ctx context.Context) error
}
