package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// PostValidationService decorates a PostService with input validation.
// Mutating and listing calls are checked against the blog validation rules
// before they reach the inner service; reads by identifier pass through.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewBlogValidator(),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, author models.User, post models.Post) (models.Post, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("error during post validation before saving: %w", err)
	}

	return v.inner.CreatePost(ctx, author, post)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *PostValidationService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, 0, fmt.Errorf("error during filter validation before listing: %w", err)
	}

	return v.inner.ListPosts(ctx, filter)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Post{}, fmt.Errorf("error during post update validation: %w", err)
	}

	return v.inner.UpdatePost(ctx, postID, update)
}

func (v *PostValidationService) DeletePost(ctx context.Context, postID string) error {
	return v.inner.DeletePost(ctx, postID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
