// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

const (
	// KVBucketNameListProviderSettings is the name of the KV bucket holding runtime settings.
	KVBucketNameListProviderSettings = "list-provider-settings"

	// ConfigKeyExcludeUserProvider is the settings key carrying the comma-separated
	// list of user directory provider tags excluded from contributor listings.
	ConfigKeyExcludeUserProvider = "exclude.user.provider"
)
