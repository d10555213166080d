// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// The list-provider-api service resolves named key/value listings, such as
// theme and contributor listings, over NATS request/reply.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/cmd/list-provider-api/service"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/log"
)

func main() {
	log.InitStructureLogConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	if err := handleListProviderAPI(ctx, &wg); err != nil {
		slog.ErrorContext(ctx, "failed to start list provider API", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "list provider service running")

	<-ctx.Done()
	slog.InfoContext(ctx, "shutdown signal received")

	// Give in-flight handlers a bounded window to drain
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("all handlers stopped")
	case <-time.After(30 * time.Second):
		slog.Warn("shutdown timed out waiting for handlers")
	}

	if client := service.GetNATSClient(context.Background()); client != nil {
		if err := client.Close(); err != nil {
			slog.Error("failed to close NATS client", "error", err)
		}
	}

	slog.Info("list provider service stopped")
}
