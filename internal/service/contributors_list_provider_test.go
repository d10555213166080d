// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/infrastructure/mock"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/constants"
)

func newContributorsProvider(mockRepo *mock.MockRepository, excluded string) ContributorsListProvider {
	return NewContributorsListProvider(
		WithUserDirectory(mockRepo),
		WithContributorSearchIndex(mockRepo),
		WithExcludedProviders(excluded),
	)
}

func TestContributorsPlainNames(t *testing.T) {
	mockRepo := mock.NewMockRepository()
	provider := newContributorsProvider(mockRepo, "")

	result, err := provider.GetList(context.Background(), ContributorsListDefault, nil)
	require.NoError(t, err)

	// Union of directory display names (blank-named users dropped) and all
	// six indexed fields, sorted, key equal to label.
	expected := []model.ListingEntry{
		{Key: "Anna Smith", Value: "Anna Smith"},
		{Key: "Event Team", Value: "Event Team"},
		{Key: "Guest Lecturer", Value: "Guest Lecturer"},
		{Key: "John Doe", Value: "John Doe"},
		{Key: "Media Office", Value: "Media Office"},
		{Key: "Paula Jones", Value: "Paula Jones"},
	}
	assert.Equal(t, expected, result.Entries())
}

func TestContributorsPlainNamesPagination(t *testing.T) {
	mockRepo := mock.NewMockRepository()
	mockRepo.ClearAll()
	for i, name := range []string{"Dora", "Edgar", "Alice", "Carol", "Bob"} {
		mockRepo.AddUser(model.User{Username: fmt.Sprintf("user-%d", i), Name: name, Provider: "ldap"})
	}
	provider := newContributorsProvider(mockRepo, "")

	tests := []struct {
		name     string
		query    *model.ListingQuery
		expected []string
	}{
		{
			name:     "offset two limit two returns third and fourth entries",
			query:    &model.ListingQuery{Offset: intPtr(2), Limit: intPtr(2)},
			expected: []string{"Carol", "Dora"},
		},
		{
			name:     "explicit limit zero means unbounded",
			query:    &model.ListingQuery{Limit: intPtr(0)},
			expected: []string{"Alice", "Bob", "Carol", "Dora", "Edgar"},
		},
		{
			name:     "offset only",
			query:    &model.ListingQuery{Offset: intPtr(3)},
			expected: []string{"Dora", "Edgar"},
		},
		{
			name:     "nil query returns everything",
			query:    nil,
			expected: []string{"Alice", "Bob", "Carol", "Dora", "Edgar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := provider.GetList(context.Background(), ContributorsListDefault, tt.query)
			require.NoError(t, err)

			names := make([]string, 0, result.Len())
			for _, entry := range result.Entries() {
				names = append(names, entry.Value)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestContributorsUsernames(t *testing.T) {
	mockRepo := mock.NewMockRepository()
	provider := newContributorsProvider(mockRepo, "")

	result, err := provider.GetList(context.Background(), ContributorsListUsernames, nil)
	require.NoError(t, err)

	// Directory only: keyed by username, blank display names fall back to
	// the username, sorted by label.
	expected := []model.ListingEntry{
		{Key: "asmith", Value: "Anna Smith"},
		{Key: "jdoe", Value: "John Doe"},
		{Key: "svc-ingest", Value: "svc-ingest"},
	}
	assert.Equal(t, expected, result.Entries())
}

func TestContributorsUsernamesWindowLimitZero(t *testing.T) {
	mockRepo := mock.NewMockRepository()
	provider := newContributorsProvider(mockRepo, "")

	// The shared window utility treats an explicit limit of zero as zero
	// entries, unlike the plain-names counter.
	for _, listName := range []string{ContributorsListUsernames, ContributorsListNamesToUsernames} {
		t.Run(listName, func(t *testing.T) {
			result, err := provider.GetList(context.Background(), listName, &model.ListingQuery{Limit: intPtr(0)})
			require.NoError(t, err)
			assert.Zero(t, result.Len())
		})
	}
}

func TestContributorsNamesToUsernames(t *testing.T) {
	mockRepo := mock.NewMockRepository()
	provider := newContributorsProvider(mockRepo, "")

	result, err := provider.GetList(context.Background(), ContributorsListNamesToUsernames, nil)
	require.NoError(t, err)

	// "John Doe" exists in the directory and as an event contributor term:
	// the directory-sourced entry wins, keyed by username. "Paula Jones"
	// appears in two indexed fields but yields a single entry.
	expected := []model.ListingEntry{
		{Key: "asmith", Value: "Anna Smith"},
		{Key: "Event Team", Value: "Event Team"},
		{Key: "Guest Lecturer", Value: "Guest Lecturer"},
		{Key: "jdoe", Value: "John Doe"},
		{Key: "Media Office", Value: "Media Office"},
		{Key: "Paula Jones", Value: "Paula Jones"},
		{Key: "svc-ingest", Value: "svc-ingest"},
	}
	assert.Equal(t, expected, result.Entries())
}

func TestContributorsUnrecognizedKeyFallsBackToPlainNames(t *testing.T) {
	mockRepo := mock.NewMockRepository()
	provider := newContributorsProvider(mockRepo, "")

	fallback, err := provider.GetList(context.Background(), "CONTRIBUTORS.SPEAKERS", nil)
	require.NoError(t, err)

	plain, err := provider.GetList(context.Background(), ContributorsListDefault, nil)
	require.NoError(t, err)

	assert.Equal(t, plain.Entries(), fallback.Entries())
}

func TestContributorsExclusion(t *testing.T) {
	tests := []struct {
		name     string
		excluded string
		listName string
		expected []model.ListingEntry
	}{
		{
			name:     "sentinel removes every directory entry, index terms remain",
			excluded: "*",
			listName: ContributorsListDefault,
			expected: []model.ListingEntry{
				{Key: "Event Team", Value: "Event Team"},
				{Key: "Guest Lecturer", Value: "Guest Lecturer"},
				{Key: "John Doe", Value: "John Doe"},
				{Key: "Media Office", Value: "Media Office"},
				{Key: "Paula Jones", Value: "Paula Jones"},
			},
		},
		{
			name:     "sentinel leaves usernames listing empty",
			excluded: "*",
			listName: ContributorsListUsernames,
			expected: nil,
		},
		{
			name:     "single provider tag excluded",
			excluded: "system",
			listName: ContributorsListUsernames,
			expected: []model.ListingEntry{
				{Key: "asmith", Value: "Anna Smith"},
				{Key: "jdoe", Value: "John Doe"},
			},
		},
		{
			name:     "excluded directory name resurfaces as index term",
			excluded: "ldap",
			listName: ContributorsListNamesToUsernames,
			expected: []model.ListingEntry{
				{Key: "Event Team", Value: "Event Team"},
				{Key: "Guest Lecturer", Value: "Guest Lecturer"},
				{Key: "John Doe", Value: "John Doe"},
				{Key: "Media Office", Value: "Media Office"},
				{Key: "Paula Jones", Value: "Paula Jones"},
				{Key: "svc-ingest", Value: "svc-ingest"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mock.NewMockRepository()
			provider := newContributorsProvider(mockRepo, tt.excluded)

			result, err := provider.GetList(context.Background(), tt.listName, nil)
			require.NoError(t, err)

			assert.Equal(t, len(tt.expected), result.Len())
			if tt.expected != nil {
				assert.Equal(t, tt.expected, result.Entries())
			}
		})
	}
}

func TestContributorsCollaboratorErrorsPassThrough(t *testing.T) {
	directoryErr := errors.New("user directory unavailable")
	indexErr := errors.New("distinct terms query failed")

	tests := []struct {
		name      string
		setupMock func(*mock.MockRepository)
		listName  string
		expected  error
	}{
		{
			name: "directory failure in plain names",
			setupMock: func(m *mock.MockRepository) {
				m.SetFindUsersError(directoryErr)
			},
			listName: ContributorsListDefault,
			expected: directoryErr,
		},
		{
			name: "directory failure in usernames",
			setupMock: func(m *mock.MockRepository) {
				m.SetFindUsersError(directoryErr)
			},
			listName: ContributorsListUsernames,
			expected: directoryErr,
		},
		{
			name: "index failure in plain names",
			setupMock: func(m *mock.MockRepository) {
				m.SetDistinctTermsError(indexErr)
			},
			listName: ContributorsListDefault,
			expected: indexErr,
		},
		{
			name: "index failure in names to usernames",
			setupMock: func(m *mock.MockRepository) {
				m.SetDistinctTermsError(indexErr)
			},
			listName: ContributorsListNamesToUsernames,
			expected: indexErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mock.NewMockRepository()
			tt.setupMock(mockRepo)
			provider := newContributorsProvider(mockRepo, "")

			result, err := provider.GetList(context.Background(), tt.listName, nil)
			require.Error(t, err)
			assert.Nil(t, result)

			// Collaborator failures surface unchanged, never wrapped.
			assert.Equal(t, tt.expected, err)
		})
	}
}

func TestContributorsConcurrentReconfigure(t *testing.T) {
	mockRepo := mock.NewMockRepository()
	mockRepo.ClearAll()
	mockRepo.AddUser(model.User{Username: "u-ldap", Name: "L. User", Provider: "ldap"})
	mockRepo.AddUser(model.User{Username: "u-crowd", Name: "C. User", Provider: "crowd"})

	provider := newContributorsProvider(mockRepo, "")
	ctx := context.Background()

	// Every listing observed during concurrent reconfiguration must match
	// one of the complete snapshots, never a partial set.
	valid := map[int]bool{0: true, 1: true, 2: true}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			provider.Reconfigure(ctx, "ldap")
			provider.Reconfigure(ctx, "*")
			provider.Reconfigure(ctx, "")
		}
	}()

	for i := 0; i < 200; i++ {
		result, err := provider.GetList(ctx, ContributorsListUsernames, nil)
		require.NoError(t, err)
		assert.True(t, valid[result.Len()], "unexpected entry count %d", result.Len())

		// With one provider excluded, only the other's user remains.
		if result.Len() == 1 {
			entry := result.Entries()[0]
			assert.Equal(t, "u-crowd", entry.Key)
		}
	}
	<-done
}

func TestContributorsContract(t *testing.T) {
	provider := newContributorsProvider(mock.NewMockRepository(), "")

	assert.Equal(t, []string{"CONTRIBUTORS", "CONTRIBUTORS.USERNAMES", "CONTRIBUTORS.NAMES.TO.USERNAMES"}, provider.ListNames())
	assert.False(t, provider.IsTranslatable(ContributorsListDefault))
	assert.Empty(t, provider.Default())
}

func TestNewContributorsListProviderRequiresCollaborators(t *testing.T) {
	mockRepo := mock.NewMockRepository()

	assert.Panics(t, func() {
		NewContributorsListProvider(WithUserDirectory(mockRepo))
	})
	assert.Panics(t, func() {
		NewContributorsListProvider(WithContributorSearchIndex(mockRepo))
	})
}

func TestContributorsPrincipalIndependent(t *testing.T) {
	// Contributor listings are not scoped to the caller; the principal in
	// context must not change the outcome.
	mockRepo := mock.NewMockRepository()
	provider := newContributorsProvider(mockRepo, "")

	withPrincipal := context.WithValue(context.Background(), constants.PrincipalContextID, model.Principal{
		Username:     "asmith",
		Organization: "org-2",
	})

	a, err := provider.GetList(withPrincipal, ContributorsListDefault, nil)
	require.NoError(t, err)
	b, err := provider.GetList(context.Background(), ContributorsListDefault, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Entries(), b.Entries())
}
