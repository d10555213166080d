// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/infrastructure/mock"
)

func newTestRegistry() (*Registry, ListProvider, ListProvider) {
	mockRepo := mock.NewMockRepository()
	themes := NewThemesListProvider(WithThemeSearchIndex(mockRepo))
	contributors := NewContributorsListProvider(
		WithUserDirectory(mockRepo),
		WithContributorSearchIndex(mockRepo),
	)
	return NewRegistry(themes, contributors), themes, contributors
}

func TestRegistryResolve(t *testing.T) {
	registry, themes, contributors := newTestRegistry()

	tests := []struct {
		name     string
		listName string
		expected ListProvider
		found    bool
	}{
		{
			name:     "theme listing key",
			listName: ThemesListName,
			expected: themes,
			found:    true,
		},
		{
			name:     "contributor listing key",
			listName: ContributorsListNamesToUsernames,
			expected: contributors,
			found:    true,
		},
		{
			name:     "bare prefix",
			listName: "CONTRIBUTORS",
			expected: contributors,
			found:    true,
		},
		{
			name:     "unrecognized key under a known prefix reaches its provider",
			listName: "THEMES.COLORS",
			expected: themes,
			found:    true,
		},
		{
			name:     "unknown prefix",
			listName: "LANGUAGES",
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, ok := registry.Resolve(tt.listName)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Same(t, tt.expected, provider)
			}
		})
	}
}

func TestRegistryListNames(t *testing.T) {
	registry, _, _ := newTestRegistry()

	assert.Equal(t, []string{
		"CONTRIBUTORS",
		"CONTRIBUTORS.NAMES.TO.USERNAMES",
		"CONTRIBUTORS.USERNAMES",
		"THEMES",
		"THEMES.DESCRIPTION",
		"THEMES.NAME",
	}, registry.ListNames())
}
