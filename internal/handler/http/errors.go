// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session and ownership middleware. Callers can
// match against them with [errors.Is].
var (
	// ErrAuthenticationRequired is returned by the requireAuth middleware when
	// the request carries no resolved session, either because the session
	// cookie was absent or because its token failed validation.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrNotPostOwner is returned by the ownership middleware when the
	// authenticated user is not the author of the targeted post.
	ErrNotPostOwner = errors.New("not the owner of the post")

	// ErrInvalidPostID is returned when the post identifier in the URL does
	// not parse as a UUID.
	ErrInvalidPostID = errors.New("invalid post id")
)
