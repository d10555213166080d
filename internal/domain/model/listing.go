// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package model contains the domain models for the list provider service.
package model

import "encoding/json"

// ListingQuery carries the optional pagination window for a listing request.
// A nil query means no offset and no limit.
type ListingQuery struct {
	// Offset skips that many entries from the start of the sort order.
	Offset *int `json:"offset,omitempty"`

	// Limit bounds the number of returned entries. Its interpretation when
	// set to zero depends on the strategy applying it; see the provider docs.
	Limit *int `json:"limit,omitempty"`
}

// OffsetOr returns the offset when present, otherwise def.
func (q *ListingQuery) OffsetOr(def int) int {
	if q == nil || q.Offset == nil {
		return def
	}
	return *q.Offset
}

// LimitOr returns the limit when present, otherwise def.
func (q *ListingQuery) LimitOr(def int) int {
	if q == nil || q.Limit == nil {
		return def
	}
	return *q.Limit
}

// HasLimit reports whether an explicit limit was requested.
func (q *ListingQuery) HasLimit() bool {
	return q != nil && q.Limit != nil
}

// ListingEntry is a single key/value pair of a listing.
type ListingEntry struct {
	// Key is the entry identifier (theme ID, username, or the name itself).
	Key string `json:"key"`

	// Value is the display value for the key.
	Value string `json:"value"`
}

// ListingResult is an insertion-ordered mapping from key to display value.
// Put keeps the position of the first insertion and lets the last write win
// for the value, so iteration order always matches the order entries were
// added and duplicate keys cannot occur.
type ListingResult struct {
	index   map[string]int
	entries []ListingEntry
}

// NewListingResult creates an empty listing result.
func NewListingResult() *ListingResult {
	return &ListingResult{
		index: make(map[string]int),
	}
}

// Put adds or replaces the value for key, preserving insertion order.
func (r *ListingResult) Put(key, value string) {
	if i, ok := r.index[key]; ok {
		r.entries[i].Value = value
		return
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, ListingEntry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (r *ListingResult) Get(key string) (string, bool) {
	i, ok := r.index[key]
	if !ok {
		return "", false
	}
	return r.entries[i].Value, true
}

// Len returns the number of entries.
func (r *ListingResult) Len() int {
	return len(r.entries)
}

// Entries returns the entries in insertion order. The returned slice is the
// result's backing storage and must not be mutated by callers.
func (r *ListingResult) Entries() []ListingEntry {
	return r.entries
}

// MarshalJSON encodes the listing as an ordered array of entries.
func (r *ListingResult) MarshalJSON() ([]byte, error) {
	if r.entries == nil {
		return json.Marshal([]ListingEntry{})
	}
	return json.Marshal(r.entries)
}

// UnmarshalJSON decodes an ordered array of entries into the listing.
func (r *ListingResult) UnmarshalJSON(data []byte) error {
	var entries []ListingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	r.index = make(map[string]int, len(entries))
	r.entries = nil
	for _, entry := range entries {
		r.Put(entry.Key, entry.Value)
	}
	return nil
}

// Contributor is a transient aggregation value pairing an identifier with a
// display label. It exists only while a contributor listing is being built.
type Contributor struct {
	// Key is the identifier, e.g. a username or the raw indexed term.
	Key string

	// Label is the display name.
	Label string
}
