// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import "context"

// SettingsWatcher delivers runtime configuration values at startup and on
// every subsequent change.
type SettingsWatcher interface {
	// WatchExcludedProviders invokes apply with the current raw
	// exclude.user.provider value and again whenever it changes, until the
	// context is cancelled. apply receives the empty string when the value
	// is deleted.
	WatchExcludedProviders(ctx context.Context, apply func(raw string)) error
}
