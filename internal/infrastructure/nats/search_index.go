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

// searchIndex consumes the index-api over NATS request/reply
type searchIndex struct {
	client *NATSClient
}

// distinctTermsPayload is the request body for the distinct terms subject
type distinctTermsPayload struct {
	Field        string `json:"field"`
	DocumentType string `json:"document_type"`
}

// request performs a JSON request/reply exchange on the given subject.
// Replies carrying a JSON error object surface as typed errors.
func (s *searchIndex) request(ctx context.Context, subject string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", subject, err)
	}

	msg, err := s.client.conn.RequestWithContext(ctx, subject, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to request search index",
			"error", err,
			"subject", subject,
		)
		return nil, errors.NewServiceUnavailable(fmt.Sprintf("index-api unavailable: %v", err))
	}

	// Try to parse as JSON error response first
	var errorResponse struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(msg.Data, &errorResponse); err == nil && errorResponse.Error != "" {
		slog.WarnContext(ctx, "search index responded with an error", "subject", subject, "error", errorResponse.Error)
		return nil, errors.NewUnexpected(errorResponse.Error)
	}

	return msg.Data, nil
}

// QueryThemes queries the index for the themes visible to the caller,
// sorted ascending by name
func (s *searchIndex) QueryThemes(ctx context.Context, criteria model.ThemeSearchCriteria) ([]model.Theme, error) {
	slog.DebugContext(ctx, "requesting themes via NATS",
		"subject", constants.IndexQueryThemesSubject,
		"organization", criteria.Organization,
		"offset", criteria.Offset,
		"limit", criteria.Limit,
	)

	data, err := s.request(ctx, constants.IndexQueryThemesSubject, criteria)
	if err != nil {
		return nil, err
	}

	// Response should be empty when no theme is visible
	if len(data) == 0 {
		return nil, nil
	}

	var themes []model.Theme
	if err := json.Unmarshal(data, &themes); err != nil {
		slog.ErrorContext(ctx, "failed to unmarshal themes response",
			"error", err,
			"subject", constants.IndexQueryThemesSubject,
		)
		return nil, fmt.Errorf("failed to unmarshal themes: %w", err)
	}

	slog.DebugContext(ctx, "themes retrieved successfully",
		"count", len(themes),
	)

	return themes, nil
}

// DistinctTerms fetches the distinct values of a field across all documents
// of the given type. No ordering is guaranteed.
func (s *searchIndex) DistinctTerms(ctx context.Context, field, documentType string) ([]string, error) {
	slog.DebugContext(ctx, "requesting distinct field terms via NATS",
		"subject", constants.IndexDistinctTermsSubject,
		"field", field,
		"document_type", documentType,
	)

	data, err := s.request(ctx, constants.IndexDistinctTermsSubject, distinctTermsPayload{
		Field:        field,
		DocumentType: documentType,
	})
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		slog.ErrorContext(ctx, "failed to unmarshal distinct terms response",
			"error", err,
			"field", field,
			"document_type", documentType,
		)
		return nil, fmt.Errorf("failed to unmarshal distinct terms: %w", err)
	}

	return terms, nil
}

// IsReady checks if the underlying NATS connection is ready
func (s *searchIndex) IsReady(ctx context.Context) error {
	return s.client.IsReady(ctx)
}

// NewSearchIndexReader creates a new search index reader implementation using NATS messaging.
func NewSearchIndexReader(client *NATSClient) port.SearchIndexReader {
	return &searchIndex{
		client: client,
	}
}
