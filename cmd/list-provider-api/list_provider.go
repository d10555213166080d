// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/cmd/list-provider-api/service"
	internalService "github.com/linuxfoundation/lfx-v2-list-provider-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/constants"
)

// handleListProviderAPI wires the provider registry to the NATS request
// subjects and starts the queue subscriptions.
func handleListProviderAPI(ctx context.Context, wg *sync.WaitGroup) error {
	slog.InfoContext(ctx, "starting list provider API")

	// Get dependencies
	searchIndex := service.SearchIndexRetriever(ctx)
	userDirectory := service.UserRetriever(ctx)
	natsClient := service.GetNATSClient(ctx)

	cfg := service.AppConfigImpl(ctx)

	contributorsProvider := internalService.NewContributorsListProvider(
		internalService.WithUserDirectory(userDirectory),
		internalService.WithContributorSearchIndex(searchIndex),
		internalService.WithExcludedProviders(cfg.ExcludeUserProvider),
	)

	registry := internalService.NewRegistry(
		internalService.NewThemesListProvider(
			internalService.WithThemeSearchIndex(searchIndex),
		),
		contributorsProvider,
	)

	providerService := service.NewListProviderService(registry)

	// Follow runtime changes to the excluded provider set
	if watcher := service.SettingsWatcherRetriever(ctx); watcher != nil {
		errWatch := watcher.WatchExcludedProviders(ctx, func(raw string) {
			contributorsProvider.Reconfigure(ctx, raw)
		})
		if errWatch != nil {
			return fmt.Errorf("failed to watch excluded provider settings: %w", errWatch)
		}
	}

	handlers := map[string]func(context.Context, []byte) []byte{
		constants.ListProviderGetListSubject:   providerService.HandleGetList,
		constants.ListProviderListNamesSubject: providerService.HandleListNames,
	}

	for subject, handler := range handlers {
		subject, handler := subject, handler
		_, subErr := natsClient.QueueSubscribe(
			subject,
			constants.ListProviderAPIQueue,
			func(msg *nats.Msg) {
				// Check if service is shutting down
				select {
				case <-ctx.Done():
					slog.InfoContext(ctx, "rejecting message - service shutting down",
						"subject", msg.Subject)
					return
				default:
					// Continue processing
				}

				// Fresh context with timeout for this message so an
				// in-flight request survives shutdown cancellation
				msgCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				reply := handler(msgCtx, msg.Data)
				if msg.Reply == "" {
					return
				}
				if respondErr := msg.Respond(reply); respondErr != nil {
					slog.ErrorContext(msgCtx, "failed to respond to message",
						"error", respondErr,
						"subject", msg.Subject)
				}
			},
		)
		if subErr != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, subErr)
		}
		slog.InfoContext(ctx, "subscribed to list provider subject",
			"subject", subject,
			"queue", constants.ListProviderAPIQueue)
	}

	slog.InfoContext(ctx, "list provider API started successfully")

	// Graceful shutdown
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		slog.InfoContext(ctx, "shutting down list provider API")
		// NATS client cleanup handled by Close() in main shutdown
	}()

	return nil
}
