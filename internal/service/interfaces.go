package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PostService interface {
	CreatePost(ctx context.Context, author models.User, post models.Post) (models.Post, error)

	GetPost(ctx context.Context, postID string) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int, error)

	UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// logging or validating.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}
