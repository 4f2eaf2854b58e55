package store

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/mock_repositories.go -package=mock

// UserRepository is the persistence contract for user accounts.
//
// Implementations must map a unique-constraint violation on the username
// column to [ErrUsernameTaken] so that two racing registrations resolve to
// exactly one success.
type UserRepository interface {
	// CreateUser persists a new user record and returns the canonical
	// database representation of the created account.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves the user whose username matches exactly.
	// Returns [ErrNoUserWasFound] when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// PostRepository is the persistence contract for blog posts.
type PostRepository interface {
	// CreatePost persists a new post and returns the canonical database
	// representation with server-assigned timestamps.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// GetPostByID retrieves a post by its identifier.
	// Returns [ErrPostNotFound] when no such post exists.
	GetPostByID(ctx context.Context, postID string) (models.Post, error)

	// ListPosts returns one fixed-size page of posts matching the filter,
	// newest first.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)

	// CountPosts returns the total number of posts matching the filter,
	// ignoring pagination.
	CountPosts(ctx context.Context, filter models.PostFilter) (int, error)

	// UpdatePost applies a partial update to the given post and returns the
	// updated record. The owner reference is never modified.
	// Returns [ErrPostNotFound] when no such post exists.
	UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error)

	// DeletePost removes the given post.
	// Returns [ErrPostNotFound] when no such post exists.
	DeletePost(ctx context.Context, postID string) error
}
