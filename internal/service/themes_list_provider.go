// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/port"
	errs "github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/errors"
)

// themesProviderPrefix scopes the theme listing keys.
const themesProviderPrefix = "THEMES"

// Listing keys recognized by the themes list provider.
const (
	// ThemesListName maps theme identifiers to theme names
	ThemesListName = themesProviderPrefix + ".NAME"
	// ThemesListDescription maps theme identifiers to theme descriptions
	ThemesListDescription = themesProviderPrefix + ".DESCRIPTION"
)

var themesListNames = []string{themesProviderPrefix, ThemesListName, ThemesListDescription}

// themesListProviderOption defines a function type for setting options
type themesListProviderOption func(*themesListProvider)

// WithThemeSearchIndex sets the search index reader
func WithThemeSearchIndex(index port.SearchIndexReader) themesListProviderOption {
	return func(p *themesListProvider) {
		p.searchIndex = index
	}
}

// themesListProvider builds theme identifier listings from the search index
type themesListProvider struct {
	searchIndex port.SearchIndexReader
}

// ListNames returns the listing keys recognized by the themes provider
func (p *themesListProvider) ListNames() []string {
	return themesListNames
}

// GetList builds the requested theme listing. Unrecognized listing keys
// yield an empty result without error. A search index failure surfaces as a
// ListingUnavailable error; the cause is logged, not exposed.
func (p *themesListProvider) GetList(ctx context.Context, listName string, query *model.ListingQuery) (*model.ListingResult, error) {
	list := model.NewListingResult()

	switch listName {
	case ThemesListName:
		themes, err := p.queryThemes(ctx, listName, query)
		if err != nil {
			return nil, err
		}
		for _, theme := range themes {
			list.Put(strconv.FormatInt(theme.ID, 10), theme.Name)
		}

	case ThemesListDescription:
		themes, err := p.queryThemes(ctx, listName, query)
		if err != nil {
			return nil, err
		}
		for _, theme := range themes {
			// themes lacking a description yield the empty string
			list.Put(strconv.FormatInt(theme.ID, 10), theme.Description)
		}

	default:
		slog.DebugContext(ctx, "unrecognized theme listing key",
			"list_name", listName,
		)
	}

	return list, nil
}

// queryThemes executes the scoped, name-sorted theme query shared by both
// listing keys.
func (p *themesListProvider) queryThemes(ctx context.Context, listName string, query *model.ListingQuery) ([]model.Theme, error) {
	principal := principalFromContext(ctx)

	offset := query.OffsetOr(0)
	criteria := model.ThemeSearchCriteria{
		Organization: principal.Organization,
		Username:     principal.Username,
		Offset:       offset,
		Limit:        query.LimitOr(math.MaxInt32 - offset),
	}

	themes, err := p.searchIndex.QueryThemes(ctx, criteria)
	if err != nil {
		slog.ErrorContext(ctx, "the search index was not able to get the themes",
			"error", err,
			"list_name", listName,
		)
		return nil, errs.NewListingUnavailable(fmt.Sprintf("no themes list for list name %s found", listName))
	}

	return themes, nil
}

// IsTranslatable reports whether the listing values are subject to translation
func (p *themesListProvider) IsTranslatable(listName string) bool {
	return false
}

// Default returns the provider's default listing key, empty when none
func (p *themesListProvider) Default() string {
	return ""
}

// NewThemesListProvider creates a new themes list provider using the option pattern
func NewThemesListProvider(opts ...themesListProviderOption) ListProvider {
	p := &themesListProvider{}
	for _, opt := range opts {
		opt(p)
	}
	if p.searchIndex == nil {
		panic("searchIndex is required")
	}
	return p
}
