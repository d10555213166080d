// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import "strings"

// AllUserProvidersSentinel marks every user-directory source as excluded.
const AllUserProvidersSentinel = "*"

// ExcludedProviders is an immutable snapshot of the provider tags excluded
// from contributor listings. Snapshots are rebuilt wholesale on each
// configuration change and swapped atomically; they are never mutated, so
// concurrent readers always observe a complete set.
type ExcludedProviders struct {
	all  bool
	tags map[string]struct{}
}

// ParseExcludedProviders builds a snapshot from the comma-separated
// configuration value. Blank segments are skipped; the "*" sentinel
// excludes all user-directory-sourced entries.
func ParseExcludedProviders(raw string) *ExcludedProviders {
	excluded := &ExcludedProviders{
		tags: make(map[string]struct{}),
	}
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if tag == AllUserProvidersSentinel {
			excluded.all = true
			continue
		}
		excluded.tags[tag] = struct{}{}
	}
	return excluded
}

// ExcludesAll reports whether the sentinel excluding every directory source
// is present.
func (e *ExcludedProviders) ExcludesAll() bool {
	return e != nil && e.all
}

// Excluded reports whether the given provider tag is excluded.
func (e *ExcludedProviders) Excluded(provider string) bool {
	if e == nil {
		return false
	}
	if e.all {
		return true
	}
	_, ok := e.tags[provider]
	return ok
}

// Tags returns the excluded provider tags, without the sentinel.
func (e *ExcludedProviders) Tags() []string {
	if e == nil {
		return nil
	}
	tags := make([]string, 0, len(e.tags))
	for tag := range e.tags {
		tags = append(tags, tag)
	}
	return tags
}
