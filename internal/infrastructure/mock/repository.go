// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package mock provides in-memory collaborator implementations for testing
// and local development.
package mock

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/constants"
)

// MockRepository provides a mock implementation of the search index and user
// directory collaborators
type MockRepository struct {
	themes []model.Theme
	users  []model.User
	terms  map[string][]string // documentType.field -> distinct terms

	queryThemesErr   error
	distinctTermsErr error
	findUsersErr     error

	mu sync.RWMutex // Protect concurrent access
}

// NewMockRepository creates a new mock repository with sample data
func NewMockRepository() *MockRepository {
	mock := &MockRepository{
		terms: make(map[string][]string),
	}

	// Add sample data for testing
	mock.themes = []model.Theme{
		{ID: 3, Name: "Autumn", Description: "Warm autumn colors"},
		{ID: 1, Name: "Spring", Description: "Fresh spring branding"},
		{ID: 2, Name: "Winter"},
	}

	mock.users = []model.User{
		{Username: "asmith", Name: "Anna Smith", Provider: "ldap"},
		{Username: "jdoe", Name: "John Doe", Provider: "ldap"},
		{Username: "svc-ingest", Name: "", Provider: "system"},
	}

	mock.terms = map[string][]string{
		termKey(constants.EventFieldContributor, constants.DocumentTypeEvent):    {"John Doe", "Paula Jones"},
		termKey(constants.EventFieldPresenter, constants.DocumentTypeEvent):      {"Guest Lecturer"},
		termKey(constants.EventFieldPublisher, constants.DocumentTypeEvent):      {"Media Office"},
		termKey(constants.SeriesFieldContributors, constants.DocumentTypeSeries): {"Paula Jones"},
		termKey(constants.SeriesFieldOrganizers, constants.DocumentTypeSeries):   {"Event Team"},
		termKey(constants.SeriesFieldPublishers, constants.DocumentTypeSeries):   {"Media Office"},
	}

	return mock
}

// QueryThemes returns the sample themes sorted ascending by name, honoring
// the criteria's offset and limit
func (m *MockRepository) QueryThemes(ctx context.Context, criteria model.ThemeSearchCriteria) ([]model.Theme, error) {
	slog.DebugContext(ctx, "mock search index: querying themes",
		"organization", criteria.Organization,
		"offset", criteria.Offset,
		"limit", criteria.Limit,
	)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.queryThemesErr != nil {
		return nil, m.queryThemesErr
	}

	sorted := make([]model.Theme, len(m.themes))
	copy(sorted, m.themes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	if criteria.Offset >= len(sorted) {
		return nil, nil
	}
	sorted = sorted[criteria.Offset:]
	if criteria.Limit >= 0 && criteria.Limit < len(sorted) {
		sorted = sorted[:criteria.Limit]
	}

	return sorted, nil
}

// DistinctTerms returns the sample terms for the field and document type
func (m *MockRepository) DistinctTerms(ctx context.Context, field, documentType string) ([]string, error) {
	slog.DebugContext(ctx, "mock search index: fetching distinct terms",
		"field", field,
		"document_type", documentType,
	)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.distinctTermsErr != nil {
		return nil, m.distinctTermsErr
	}

	terms := m.terms[termKey(field, documentType)]
	result := make([]string, len(terms))
	copy(result, terms)
	return result, nil
}

// FindUsers returns the sample users; the wildcard pattern matches everyone
func (m *MockRepository) FindUsers(ctx context.Context, pattern string, offset, limit int) ([]model.User, error) {
	slog.DebugContext(ctx, "mock user directory: finding users",
		"pattern", pattern,
		"offset", offset,
		"limit", limit,
	)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.findUsersErr != nil {
		return nil, m.findUsersErr
	}

	users := make([]model.User, len(m.users))
	copy(users, m.users)
	return users, nil
}

// IsReady always reports ready
func (m *MockRepository) IsReady(ctx context.Context) error {
	return nil
}

// ClearAll removes all sample data for test isolation
func (m *MockRepository) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.themes = nil
	m.users = nil
	m.terms = make(map[string][]string)
	m.queryThemesErr = nil
	m.distinctTermsErr = nil
	m.findUsersErr = nil
}

// AddTheme adds a theme to the mock index
func (m *MockRepository) AddTheme(theme model.Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.themes = append(m.themes, theme)
}

// AddUser adds a user to the mock directory
func (m *MockRepository) AddUser(user model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, user)
}

// SetTerms replaces the distinct terms for a field and document type
func (m *MockRepository) SetTerms(field, documentType string, terms []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.terms[termKey(field, documentType)] = terms
}

// SetQueryThemesError simulates a theme query failure
func (m *MockRepository) SetQueryThemesError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryThemesErr = err
}

// SetDistinctTermsError simulates a distinct terms failure
func (m *MockRepository) SetDistinctTermsError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.distinctTermsErr = err
}

// SetFindUsersError simulates a user directory failure
func (m *MockRepository) SetFindUsersError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findUsersErr = err
}

func termKey(field, documentType string) string {
	return fmt.Sprintf("%s.%s", documentType, field)
}
