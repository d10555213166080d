// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

// Search index document types
const (
	// DocumentTypeEvent identifies event documents in the search index
	DocumentTypeEvent = "event"
	// DocumentTypeSeries identifies series documents in the search index
	DocumentTypeSeries = "series"
)

// Search index field names holding contributor-like terms
const (
	// EventFieldContributor is the event contributor field
	EventFieldContributor = "contributor"
	// EventFieldPresenter is the event presenter field
	EventFieldPresenter = "presenter"
	// EventFieldPublisher is the event publisher field
	EventFieldPublisher = "publisher"

	// SeriesFieldContributors is the series contributors field
	SeriesFieldContributors = "contributors"
	// SeriesFieldOrganizers is the series organizers field
	SeriesFieldOrganizers = "organizers"
	// SeriesFieldPublishers is the series publishers field
	SeriesFieldPublishers = "publishers"
)
