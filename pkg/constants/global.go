// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package constants defines global constants used throughout the list provider service.
package constants

// Service constants
const (
	// ServiceName is the name of this service
	ServiceName = "list-provider"
)

// NATS messaging subjects consumed from collaborator services
const (
	// IndexQueryThemesSubject is the NATS subject for querying themes from the search index
	IndexQueryThemesSubject = "lfx.index-api.query_themes"
	// IndexDistinctTermsSubject is the NATS subject for fetching distinct field terms from the search index
	IndexDistinctTermsSubject = "lfx.index-api.distinct_terms"

	// UserFindUsersSubject is the NATS subject for enumerating users from the user directory
	UserFindUsersSubject = "lfx.user-api.find_users"
)

// NATS messaging subjects served by this service
const (
	// ListProviderGetListSubject is the NATS subject for resolving a listing
	ListProviderGetListSubject = "lfx.list-provider-api.get_list"
	// ListProviderListNamesSubject is the NATS subject for enumerating listing keys
	ListProviderListNamesSubject = "lfx.list-provider-api.list_names"

	// ListProviderAPIQueue is the queue group for load-balanced request handling
	ListProviderAPIQueue = "lfx.list-provider-api.queue"
)

// Environment variables
const (
	// EnvNATSURL is the environment variable for NATS server URL
	EnvNATSURL = "NATS_URL"
	// EnvRepositorySource is the environment variable selecting the collaborator implementation
	EnvRepositorySource = "REPOSITORY_SOURCE"
	// EnvConfigFile is the environment variable pointing at an optional YAML configuration file
	EnvConfigFile = "LIST_PROVIDER_CONFIG"
)
