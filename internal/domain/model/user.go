// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

// User represents a user directory record.
type User struct {
	// Username is the login name.
	Username string `json:"username"`

	// Name is the display name; may be blank.
	Name string `json:"name,omitempty"`

	// Provider is the tag naming which backing directory source the
	// account came from.
	Provider string `json:"provider,omitempty"`
}

// Principal is the caller identity supplied by the security context.
// It is carried in the request context and never mutated here.
type Principal struct {
	// Username is the caller's identity.
	Username string `json:"username"`

	// Organization is the caller's organization identifier.
	Organization string `json:"organization"`
}
