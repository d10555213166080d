// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

// Theme represents a branding theme as stored in the search index.
// Themes are read-only from this service's perspective.
type Theme struct {
	// ID is the unique numeric identifier of the theme.
	ID int64 `json:"id"`

	// Name is the display name of the theme.
	Name string `json:"name"`

	// Description is the optional theme description.
	Description string `json:"description,omitempty"`
}

// ThemeSearchCriteria scopes a theme query to the caller's organization and
// identity. Results are sorted ascending by theme name.
type ThemeSearchCriteria struct {
	// Organization is the caller's organization identifier.
	Organization string `json:"organization"`

	// Username is the caller's identity used for visibility filtering.
	Username string `json:"username"`

	// Offset skips that many themes from the start of the sort order.
	Offset int `json:"offset"`

	// Limit bounds the number of returned themes.
	Limit int `json:"limit"`
}
