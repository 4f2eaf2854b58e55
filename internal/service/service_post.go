package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// postService is the concrete implementation of PostService backed by a
// PostRepository.
type postService struct {
	postRepository store.PostRepository

	// uuidGenerator assigns identifiers to newly created posts.
	uuidGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewPostService constructs a new PostService wired to the given PostRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreatePost persists a new post on behalf of author.
//
// The post identifier and both owner columns (user ID and username) are
// assigned here from the authenticated author record; any values the caller
// put in those fields are discarded.
func (p *postService) CreatePost(ctx context.Context, author models.User, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	post.PostID = p.uuidGenerator.Generate()
	post.UserID = author.UserID
	post.Username = author.Username

	createdPost, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("username", author.Username).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// GetPost returns the post with the given identifier.
// Missing posts surface as a wrapped store.ErrPostNotFound.
func (p *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	post, err := p.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("postID", postID).Msg("post search by id failed")
		return models.Post{}, fmt.Errorf("post search by id failed: %w", err)
	}

	return post, nil
}

// ListPosts returns one page of posts matching filter, newest first, together
// with the number of the last available page for the same filter. The last
// page is never below 1 so that pagination headers stay meaningful for an
// empty result set.
func (p *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int, error) {
	log := logger.FromContext(ctx)

	posts, err := p.postRepository.ListPosts(ctx, filter)
	if err != nil {
		log.Err(err).Any("filter", filter).Msg("post listing failed")
		return nil, 0, fmt.Errorf("post listing failed: %w", err)
	}

	count, err := p.postRepository.CountPosts(ctx, filter)
	if err != nil {
		log.Err(err).Any("filter", filter).Msg("post counting failed")
		return nil, 0, fmt.Errorf("post counting failed: %w", err)
	}

	lastPage := (count + store.PostsPageSize - 1) / store.PostsPageSize
	if lastPage < 1 {
		lastPage = 1
	}

	return posts, lastPage, nil
}

// UpdatePost applies the non-nil fields of update to the stored post and
// returns the updated record. Missing posts surface as a wrapped
// store.ErrPostNotFound.
func (p *postService) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error) {
	updatedPost, err := p.postRepository.UpdatePost(ctx, postID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("postID", postID).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return updatedPost, nil
}

// DeletePost removes the post with the given identifier. Missing posts
// surface as a wrapped store.ErrPostNotFound.
func (p *postService) DeletePost(ctx context.Context, postID string) error {
	if err := p.postRepository.DeletePost(ctx, postID); err != nil {
		logger.FromContext(ctx).Err(err).Str("postID", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}
