// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/errors"
)

// userDirectory consumes the user-api over NATS request/reply
type userDirectory struct {
	client *NATSClient
}

// findUsersPayload is the request body for the find users subject. Offset
// and limit are forwarded verbatim; their semantics belong to the directory.
type findUsersPayload struct {
	Pattern string `json:"pattern"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

// FindUsers enumerates directory users matching the pattern
func (u *userDirectory) FindUsers(ctx context.Context, pattern string, offset, limit int) ([]model.User, error) {
	slog.DebugContext(ctx, "requesting users via NATS",
		"subject", constants.UserFindUsersSubject,
		"pattern", pattern,
		"offset", offset,
		"limit", limit,
	)

	data, err := json.Marshal(findUsersPayload{
		Pattern: pattern,
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal find users request: %w", err)
	}

	msg, err := u.client.conn.RequestWithContext(ctx, constants.UserFindUsersSubject, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to request users",
			"error", err,
			"subject", constants.UserFindUsersSubject,
		)
		return nil, errors.NewServiceUnavailable(fmt.Sprintf("user-api unavailable: %v", err))
	}

	// Try to parse as JSON error response first
	var errorResponse struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(msg.Data, &errorResponse); err == nil && errorResponse.Error != "" {
		slog.WarnContext(ctx, "user directory responded with an error",
			"subject", constants.UserFindUsersSubject,
			"error", errorResponse.Error,
		)
		return nil, errors.NewUnexpected(errorResponse.Error)
	}

	// Response should be empty when the directory has no users
	if len(msg.Data) == 0 {
		return []model.User{}, nil
	}

	var users []model.User
	if err := json.Unmarshal(msg.Data, &users); err != nil {
		slog.ErrorContext(ctx, "failed to unmarshal users response",
			"error", err,
			"subject", constants.UserFindUsersSubject,
		)
		return nil, fmt.Errorf("failed to unmarshal users: %w", err)
	}

	slog.DebugContext(ctx, "users retrieved successfully",
		"user_count", len(users),
	)

	return users, nil
}

// IsReady checks if the underlying NATS connection is ready
func (u *userDirectory) IsReady(ctx context.Context) error {
	return u.client.IsReady(ctx)
}

// NewUserReader creates a new user directory reader implementation using NATS messaging.
func NewUserReader(client *NATSClient) port.UserReader {
	return &userDirectory{
		client: client,
	}
}
