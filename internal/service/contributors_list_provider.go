// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/constants"
)

// contributorsProviderPrefix scopes the contributor listing keys.
const contributorsProviderPrefix = "CONTRIBUTORS"

// Listing keys recognized by the contributors list provider.
const (
	// ContributorsListDefault is the plain-names listing, also the fallback
	// for unrecognized keys
	ContributorsListDefault = contributorsProviderPrefix
	// ContributorsListUsernames maps usernames to display names, directory only
	ContributorsListUsernames = contributorsProviderPrefix + ".USERNAMES"
	// ContributorsListNamesToUsernames maps usernames or raw terms to display names
	ContributorsListNamesToUsernames = contributorsProviderPrefix + ".NAMES.TO.USERNAMES"
)

var contributorsListNames = []string{ContributorsListDefault, ContributorsListUsernames, ContributorsListNamesToUsernames}

// userWildcardPattern matches every user in the directory.
const userWildcardPattern = "%"

// termField names a search index field within a document type.
type termField struct {
	field        string
	documentType string
}

// plainNamesTermFields are the indexed fields unioned by the plain-names listing.
var plainNamesTermFields = []termField{
	{constants.EventFieldContributor, constants.DocumentTypeEvent},
	{constants.EventFieldPresenter, constants.DocumentTypeEvent},
	{constants.EventFieldPublisher, constants.DocumentTypeEvent},
	{constants.SeriesFieldContributors, constants.DocumentTypeSeries},
	{constants.SeriesFieldOrganizers, constants.DocumentTypeSeries},
	{constants.SeriesFieldPublishers, constants.DocumentTypeSeries},
}

// namesToUsernamesTermFields are the indexed fields merged into the
// names-to-usernames listing after directory deduplication.
var namesToUsernamesTermFields = []termField{
	{constants.EventFieldPresenter, constants.DocumentTypeEvent},
	{constants.EventFieldContributor, constants.DocumentTypeEvent},
	{constants.SeriesFieldContributors, constants.DocumentTypeSeries},
	{constants.SeriesFieldOrganizers, constants.DocumentTypeSeries},
	{constants.SeriesFieldPublishers, constants.DocumentTypeSeries},
}

// ContributorsListProvider is a ListProvider whose user directory exclusion
// set can be swapped at runtime.
type ContributorsListProvider interface {
	ListProvider

	// Reconfigure atomically replaces the excluded provider snapshot with
	// one parsed from the raw comma-separated configuration value
	Reconfigure(ctx context.Context, raw string)
}

// contributorsListProviderOption defines a function type for setting options
type contributorsListProviderOption func(*contributorsListProvider)

// WithUserDirectory sets the user directory reader
func WithUserDirectory(users port.UserReader) contributorsListProviderOption {
	return func(p *contributorsListProvider) {
		p.userDirectory = users
	}
}

// WithContributorSearchIndex sets the search index reader
func WithContributorSearchIndex(index port.SearchIndexReader) contributorsListProviderOption {
	return func(p *contributorsListProvider) {
		p.searchIndex = index
	}
}

// WithExcludedProviders sets the initial excluded provider configuration
func WithExcludedProviders(raw string) contributorsListProviderOption {
	return func(p *contributorsListProvider) {
		p.excluded.Store(model.ParseExcludedProviders(raw))
	}
}

// contributorsListProvider aggregates contributor-like names from the user
// directory and the search index. All per-call working data is local to the
// call; the only shared state is the exclusion snapshot, which is replaced
// atomically and never mutated.
type contributorsListProvider struct {
	userDirectory port.UserReader
	searchIndex   port.SearchIndexReader
	excluded      atomic.Pointer[model.ExcludedProviders]
}

// ListNames returns the listing keys recognized by the contributors provider
func (p *contributorsListProvider) ListNames() []string {
	return contributorsListNames
}

// GetList dispatches on the listing key; unrecognized keys fall back to the
// plain-names listing. Collaborator failures propagate unchanged.
func (p *contributorsListProvider) GetList(ctx context.Context, listName string, query *model.ListingQuery) (*model.ListingResult, error) {
	switch {
	case strings.EqualFold(listName, ContributorsListUsernames):
		return p.usernamesList(ctx, query)
	case strings.EqualFold(listName, ContributorsListNamesToUsernames):
		return p.namesToUsernamesList(ctx, query)
	default:
		return p.plainNamesList(ctx, query)
	}
}

// Reconfigure atomically replaces the excluded provider snapshot. Concurrent
// listing calls observe either the old or the new complete set.
func (p *contributorsListProvider) Reconfigure(ctx context.Context, raw string) {
	excluded := model.ParseExcludedProviders(raw)
	p.excluded.Store(excluded)
	slog.DebugContext(ctx, "excluded user providers reconfigured",
		"exclude_all", excluded.ExcludesAll(),
		"excluded_providers", excluded.Tags(),
	)
}

// plainNamesList unions directory display names with every contributor-like
// indexed term into a flat, lexicographically sorted set; key equals label.
func (p *contributorsListProvider) plainNamesList(ctx context.Context, query *model.ListingQuery) (*model.ListingResult, error) {
	names := make(map[string]struct{})

	directoryNames, err := p.directoryNames(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range directoryNames {
		names[name] = struct{}{}
	}

	termLists, err := p.collectTerms(ctx, plainNamesTermFields)
	if err != nil {
		return nil, err
	}
	for _, terms := range termLists {
		for _, term := range terms {
			names[term] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	// Inline window: limit zero means unbounded here, unlike FilterWindow.
	offset := query.OffsetOr(0)
	limit := query.LimitOr(0)

	list := model.NewListingResult()
	included := 0
	for i, name := range sorted {
		if i >= offset && (limit == 0 || included < limit) {
			list.Put(name, name)
			included++
		}
	}

	return list, nil
}

// usernamesList lists directory users only, keyed by username and labeled
// with the display name when present.
func (p *contributorsListProvider) usernamesList(ctx context.Context, query *model.ListingQuery) (*model.ListingResult, error) {
	contributors, _, err := p.directoryContributors(ctx)
	if err != nil {
		return nil, err
	}

	return contributorsToListing(contributors, query), nil
}

// namesToUsernamesList lists directory users plus indexed terms, dropping a
// term whenever a directory entry already carries that exact display name.
func (p *contributorsListProvider) namesToUsernamesList(ctx context.Context, query *model.ListingQuery) (*model.ListingResult, error) {
	contributors, labels, err := p.directoryContributors(ctx)
	if err != nil {
		return nil, err
	}

	termLists, err := p.collectTerms(ctx, namesToUsernamesTermFields)
	if err != nil {
		return nil, err
	}
	for _, terms := range termLists {
		for _, term := range terms {
			if _, taken := labels[term]; taken {
				continue
			}
			contributors = append(contributors, model.Contributor{Key: term, Label: term})
		}
	}

	return contributorsToListing(contributors, query), nil
}

// directoryNames collects the non-blank display names of all directory users
// whose provider tag is not excluded. Skipped entirely when the snapshot
// excludes all providers.
func (p *contributorsListProvider) directoryNames(ctx context.Context) ([]string, error) {
	excluded := p.excluded.Load()
	if excluded.ExcludesAll() {
		return nil, nil
	}

	users, err := p.userDirectory.FindUsers(ctx, userWildcardPattern, 0, 0)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(users))
	for _, user := range users {
		if excluded.Excluded(user.Provider) {
			continue
		}
		if strings.TrimSpace(user.Name) == "" {
			continue
		}
		names = append(names, user.Name)
	}

	return names, nil
}

// directoryContributors collects username-keyed contributors for all
// directory users whose provider tag is not excluded, falling back to the
// username when the display name is blank. The returned label set backs the
// index term deduplication.
func (p *contributorsListProvider) directoryContributors(ctx context.Context) ([]model.Contributor, map[string]struct{}, error) {
	labels := make(map[string]struct{})

	excluded := p.excluded.Load()
	if excluded.ExcludesAll() {
		return nil, labels, nil
	}

	users, err := p.userDirectory.FindUsers(ctx, userWildcardPattern, 0, 0)
	if err != nil {
		return nil, nil, err
	}

	contributors := make([]model.Contributor, 0, len(users))
	for _, user := range users {
		if excluded.Excluded(user.Provider) {
			continue
		}
		label := user.Name
		if strings.TrimSpace(label) == "" {
			label = user.Username
		}
		contributors = append(contributors, model.Contributor{Key: user.Username, Label: label})
		labels[label] = struct{}{}
	}

	return contributors, labels, nil
}

// collectTerms fetches the distinct terms for every field concurrently.
// Results keep the field order so aggregation stays deterministic; the first
// fetch failure is returned unchanged.
func (p *contributorsListProvider) collectTerms(ctx context.Context, fields []termField) ([][]string, error) {
	g, gctx := errgroup.WithContext(ctx)
	termLists := make([][]string, len(fields))

	for i, f := range fields {
		i, f := i, f
		g.Go(func() error {
			terms, err := p.searchIndex.DistinctTerms(gctx, f.field, f.documentType)
			if err != nil {
				return err
			}
			termLists[i] = terms
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return termLists, nil
}

// contributorsToListing sorts contributors by label, builds the ordered
// listing, and applies the shared pagination window.
func contributorsToListing(contributors []model.Contributor, query *model.ListingQuery) *model.ListingResult {
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Label < contributors[j].Label
	})

	list := model.NewListingResult()
	for _, contributor := range contributors {
		list.Put(contributor.Key, contributor.Label)
	}

	return FilterWindow(list, query)
}

// IsTranslatable reports whether the listing values are subject to translation
func (p *contributorsListProvider) IsTranslatable(listName string) bool {
	return false
}

// Default returns the provider's default listing key, empty when none
func (p *contributorsListProvider) Default() string {
	return ""
}

// NewContributorsListProvider creates a new contributors list provider using the option pattern
func NewContributorsListProvider(opts ...contributorsListProviderOption) ContributorsListProvider {
	p := &contributorsListProvider{}
	for _, opt := range opts {
		opt(p)
	}
	if p.userDirectory == nil {
		panic("userDirectory is required")
	}
	if p.searchIndex == nil {
		panic("searchIndex is required")
	}
	if p.excluded.Load() == nil {
		p.excluded.Store(model.ParseExcludedProviders(""))
	}
	return p
}
