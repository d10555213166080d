// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"
)

// UserReader defines the interface for enumerating user directory records
type UserReader interface {
	// FindUsers returns the users matching the pattern. This service always
	// passes the wildcard pattern with offset and limit zero; the limit
	// parameter is forwarded verbatim and its meaning is the directory's
	// contract.
	FindUsers(ctx context.Context, pattern string, offset, limit int) ([]model.User, error)

	// IsReady checks if the user directory is ready
	IsReady(ctx context.Context) error
}
