// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/service"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/constants"
	errs "github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/log"
)

// GetListPayload is the request body for the get_list subject.
type GetListPayload struct {
	ListName     string `json:"list_name"`
	Offset       *int   `json:"offset,omitempty"`
	Limit        *int   `json:"limit,omitempty"`
	Username     string `json:"username,omitempty"`
	Organization string `json:"organization,omitempty"`
}

// ListNamesResponse is the reply body for the list_names subject.
type ListNamesResponse struct {
	ListNames []string `json:"list_names"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListProviderService handles NATS requests against the provider registry.
type ListProviderService struct {
	registry *service.Registry
}

// NewListProviderService creates a handler backed by the given registry.
func NewListProviderService(registry *service.Registry) *ListProviderService {
	if registry == nil {
		panic("registry is required")
	}
	return &ListProviderService{registry: registry}
}

// HandleGetList decodes a get_list request, resolves the provider for the
// requested list name and returns the listing as JSON.
func (s *ListProviderService) HandleGetList(ctx context.Context, data []byte) []byte {
	ctx = log.AppendCtx(ctx, slog.String("request_id", uuid.NewString()))

	var payload GetListPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		slog.ErrorContext(ctx, "invalid get_list payload", "error", err)
		return errorReply(ctx, errs.NewValidation("invalid request payload"))
	}

	ctx = log.AppendCtx(ctx, slog.String("list_name", payload.ListName))

	if payload.ListName == "" {
		return errorReply(ctx, errs.NewValidation("list_name is required"))
	}

	provider, ok := s.registry.Resolve(payload.ListName)
	if !ok {
		return errorReply(ctx, errs.NewNotFound("no provider for list name "+payload.ListName))
	}

	ctx = context.WithValue(ctx, constants.PrincipalContextID, model.Principal{
		Username:     payload.Username,
		Organization: payload.Organization,
	})

	query := &model.ListingQuery{
		Offset: payload.Offset,
		Limit:  payload.Limit,
	}

	result, err := provider.GetList(ctx, payload.ListName, query)
	if err != nil {
		return errorReply(ctx, err)
	}

	reply, errMarshal := json.Marshal(result)
	if errMarshal != nil {
		slog.ErrorContext(ctx, "failed to marshal listing result", "error", errMarshal)
		return errorReply(ctx, errs.NewUnexpected("failed to encode listing", errMarshal))
	}

	slog.DebugContext(ctx, "listing resolved", "entries", result.Len())

	return reply
}

// HandleListNames returns the union of list names across all registered
// providers.
func (s *ListProviderService) HandleListNames(ctx context.Context, _ []byte) []byte {
	reply, err := json.Marshal(ListNamesResponse{ListNames: s.registry.ListNames()})
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal list names", "error", err)
		return errorReply(ctx, errs.NewUnexpected("failed to encode list names", err))
	}
	return reply
}

func errorReply(ctx context.Context, err error) []byte {
	slog.ErrorContext(ctx, "request failed", "error", err)

	reply, errMarshal := json.Marshal(errorResponse{Error: err.Error()})
	if errMarshal != nil {
		slog.ErrorContext(ctx, "failed to marshal error response", "error", errMarshal)
		return []byte(`{"error":"internal error"}`)
	}
	return reply
}
