// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service implements the list provider business logic.
package service

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-list-provider-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-list-provider-service/pkg/constants"
)

// ListProvider is the contract shared by every list provider: a stateless
// read adapter that reshapes collaborator data into an ordered key/value
// listing for UI consumption.
type ListProvider interface {
	// ListNames returns the listing keys recognized by this provider
	ListNames() []string

	// GetList builds the listing selected by listName, honoring the
	// pagination window in query
	GetList(ctx context.Context, listName string, query *model.ListingQuery) (*model.ListingResult, error)

	// IsTranslatable reports whether the listing values are subject to
	// translation
	IsTranslatable(listName string) bool

	// Default returns the provider's default listing key, empty when none
	Default() string
}

// principalFromContext extracts the caller identity stored by the transport
// layer. A missing principal yields zero values; visibility filtering is the
// index's responsibility.
func principalFromContext(ctx context.Context) model.Principal {
	principal, _ := ctx.Value(constants.PrincipalContextID).(model.Principal)
	return principal
}
