// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service wires the list provider service to its collaborators.
package service

import (
	"context"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/infrastructure/config"
	infrastructure "github.com/linuxfoundation/lfx-v2-list-provider-service/internal/infrastructure/mock"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/infrastructure/nats"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/constants"
)

var (
	appConfig    *config.AppConfig
	configDoOnce sync.Once

	natsClient      *nats.NATSClient
	natsSearchIndex port.SearchIndexReader
	natsUserReader  port.UserReader
	natsWatcher     port.SettingsWatcher

	natsDoOnce sync.Once
)

// AppConfigImpl loads the service configuration once
func AppConfigImpl(ctx context.Context) *config.AppConfig {
	configDoOnce.Do(func() {
		cfg, err := config.Load(os.Getenv(constants.EnvConfigFile))
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
		appConfig = cfg
		slog.InfoContext(ctx, "configuration loaded",
			"nats_url", cfg.NATSURL,
			"repository_source", cfg.RepositorySource,
		)
	})
	return appConfig
}

func natsInit(ctx context.Context) {
	natsDoOnce.Do(func() {
		cfg := AppConfigImpl(ctx)

		client, errNewClient := nats.NewClient(ctx, nats.Config{
			URL:           cfg.NATSURL,
			Timeout:       cfg.NATSTimeout,
			MaxReconnect:  cfg.NATSMaxReconnect,
			ReconnectWait: cfg.NATSReconnectWait,
		})
		if errNewClient != nil {
			log.Fatalf("failed to create NATS client: %v", errNewClient)
		}

		natsClient = client
		natsSearchIndex = nats.NewSearchIndexReader(client)
		natsUserReader = nats.NewUserReader(client)
		natsWatcher = nats.NewSettingsWatcher(client)
	})
}

// GetNATSClient returns the shared NATS client, initializing it on first use
func GetNATSClient(ctx context.Context) *nats.NATSClient {
	natsInit(ctx)
	return natsClient
}

// SearchIndexRetriever initializes the search index reader implementation
// based on the repository source
func SearchIndexRetriever(ctx context.Context) port.SearchIndexReader {
	cfg := AppConfigImpl(ctx)

	switch cfg.RepositorySource {
	case "mock":
		slog.InfoContext(ctx, "initializing mock search index reader")
		return mockRepositoryImpl()
	case "nats":
		slog.InfoContext(ctx, "initializing NATS search index reader")
		natsInit(ctx)
		return natsSearchIndex
	default:
		log.Fatalf("unsupported search index reader implementation: %s", cfg.RepositorySource)
		return nil
	}
}

// UserRetriever initializes the user directory reader implementation based
// on the repository source
func UserRetriever(ctx context.Context) port.UserReader {
	cfg := AppConfigImpl(ctx)

	switch cfg.RepositorySource {
	case "mock":
		slog.InfoContext(ctx, "initializing mock user directory reader")
		return mockRepositoryImpl()
	case "nats":
		slog.InfoContext(ctx, "initializing NATS user directory reader")
		natsInit(ctx)
		return natsUserReader
	default:
		log.Fatalf("unsupported user directory reader implementation: %s", cfg.RepositorySource)
		return nil
	}
}

// SettingsWatcherRetriever initializes the settings watcher; mock mode has
// no runtime settings source and returns nil
func SettingsWatcherRetriever(ctx context.Context) port.SettingsWatcher {
	cfg := AppConfigImpl(ctx)

	if cfg.RepositorySource == "mock" {
		return nil
	}
	natsInit(ctx)
	return natsWatcher
}

var (
	mockRepository       *infrastructure.MockRepository
	mockRepositoryDoOnce sync.Once
)

// mockRepositoryImpl shares a single mock repository between collaborators
func mockRepositoryImpl() *infrastructure.MockRepository {
	mockRepositoryDoOnce.Do(func() {
		mockRepository = infrastructure.NewMockRepository()
	})
	return mockRepository
}
