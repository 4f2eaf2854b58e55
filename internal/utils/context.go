// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session middleware stores the
// resolved session claims for the duration of a single request.
// Used together with SessionFromContext for type-safe retrieval.
var SessionCtxKey = contextKey("session")

// PostCtxKey is the key under which the post-loading middleware stores the
// post addressed by the request URL for the duration of a single request.
var PostCtxKey = contextKey("post")

// SessionFromContext retrieves the resolved session claims from the context.
//
// Returns the claims and an ok flag:
//   - ok == true  — the request carries a verified session
//   - ok == false — the request is anonymous
//
// Example usage:
//
//	session, ok := utils.SessionFromContext(ctx)
//	if !ok {
//	    // anonymous request
//	}
func SessionFromContext(ctx context.Context) (models.Token, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Token)
	return session, ok
}

// PostFromContext retrieves the post loaded by the routing middleware from
// the context. The ok flag is false when no post was attached.
func PostFromContext(ctx context.Context) (models.Post, bool) {
	post, ok := ctx.Value(PostCtxKey).(models.Post)
	return post, ok
}
