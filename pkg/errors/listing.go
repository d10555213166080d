// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

import "errors"

// ListingUnavailable represents a listing that could not be built because the
// search index failed to answer. The original cause is retained for logging;
// callers only see the generic message naming the failed listing key.
type ListingUnavailable struct {
	base
}

// Error returns the error message for ListingUnavailable.
func (lu ListingUnavailable) Error() string {
	return lu.error()
}

// Unwrap returns the wrapped error, if any.
func (lu ListingUnavailable) Unwrap() error {
	return lu.err
}

// NewListingUnavailable creates a new ListingUnavailable error with the provided message.
func NewListingUnavailable(message string, err ...error) ListingUnavailable {
	return ListingUnavailable{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}
