// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"sort"
	"strings"
	"sync"
)

// Registry resolves listing keys to the provider owning their prefix.
// Providers register every listing key they recognize; resolution matches on
// the key's first dot-separated segment so a provider also receives the
// unrecognized keys under its prefix and can apply its own fallback.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]ListProvider
}

// NewRegistry creates a registry holding the given providers.
func NewRegistry(providers ...ListProvider) *Registry {
	r := &Registry{
		providers: make(map[string]ListProvider),
	}
	for _, provider := range providers {
		r.Register(provider)
	}
	return r
}

// Register adds a provider under the prefix of each of its listing keys.
// Registration is idempotent for a given provider; conflicting prefixes are
// last-write-wins.
func (r *Registry) Register(provider ListProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range provider.ListNames() {
		r.providers[listingPrefix(name)] = provider
	}
}

// Resolve returns the provider owning the listing key's prefix.
func (r *Registry) Resolve(listName string) (ListProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider, ok := r.providers[listingPrefix(listName)]
	return provider, ok
}

// ListNames returns the sorted union of every registered provider's listing keys.
func (r *Registry) ListNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var names []string
	for _, provider := range r.providers {
		for _, name := range provider.ListNames() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// listingPrefix returns the segment before the first dot.
func listingPrefix(listName string) string {
	if i := strings.IndexByte(listName, '.'); i >= 0 {
		return listName[:i]
	}
	return listName
}
