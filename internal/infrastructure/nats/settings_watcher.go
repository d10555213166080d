// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/errors"

	"github.com/nats-io/nats.go/jetstream"
)

// settingsWatcher delivers runtime settings from the JetStream KV bucket
type settingsWatcher struct {
	client *NATSClient
}

// WatchExcludedProviders applies the current exclude.user.provider value and
// every subsequent change until the context is cancelled. A deleted key is
// applied as the empty string so the exclusion set resets.
func (w *settingsWatcher) WatchExcludedProviders(ctx context.Context, apply func(raw string)) error {
	kv, exists := w.client.kvStore[constants.KVBucketNameListProviderSettings]
	if !exists || kv == nil {
		return errors.NewServiceUnavailable("KV bucket not available")
	}

	watcher, err := kv.Watch(ctx, constants.ConfigKeyExcludeUserProvider)
	if err != nil {
		slog.ErrorContext(ctx, "failed to watch settings key",
			"error", err,
			"bucket", constants.KVBucketNameListProviderSettings,
			"key", constants.ConfigKeyExcludeUserProvider,
		)
		return errors.NewServiceUnavailable("failed to watch settings key", err)
	}

	go func() {
		defer func() {
			if errStop := watcher.Stop(); errStop != nil {
				slog.WarnContext(ctx, "failed to stop settings watcher", "error", errStop)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				slog.InfoContext(ctx, "shutting down settings watcher")
				return
			case entry, ok := <-watcher.Updates():
				if !ok {
					return
				}
				// A nil entry marks the end of the initial replay.
				if entry == nil {
					continue
				}
				switch entry.Operation() {
				case jetstream.KeyValuePut:
					slog.InfoContext(ctx, "settings key updated",
						"key", entry.Key(),
						"revision", entry.Revision(),
					)
					apply(string(entry.Value()))
				case jetstream.KeyValueDelete, jetstream.KeyValuePurge:
					slog.InfoContext(ctx, "settings key removed",
						"key", entry.Key(),
					)
					apply("")
				}
			}
		}
	}()

	return nil
}

// NewSettingsWatcher creates a new settings watcher implementation using the
// NATS JetStream key-value store.
func NewSettingsWatcher(client *NATSClient) port.SettingsWatcher {
	return &settingsWatcher{
		client: client,
	}
}
