package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// It executes all post CRUD operations against the "posts" table using the
// shared [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (post_id, filter values, etc.).
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost persists a new post and returns the canonical database
// representation with server-assigned timestamps. The owner columns are
// written once here and never touched again.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	tagsJSON, err := json.Marshal(post.Tags)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, createPost,
		post.PostID, post.UserID, post.Username, post.Title, post.Body, tagsJSON)

	created, err := scanPost(row)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.CreatePost").
			Str("post_id", post.PostID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: post insert failed")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetPostByID retrieves a post by its identifier.
// Returns [ErrPostNotFound] when no row matches.
func (r *postRepository) GetPostByID(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getPostByID, postID)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).
			Str("func", "*postRepository.GetPostByID").
			Str("post_id", postID).
			Msg("error: post lookup failed")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// ListPosts returns one page of posts matching the filter, newest first.
func (r *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPosts").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPosts").
			Str("username", filter.Username).
			Str("tag", filter.Tag).
			Int("page", filter.Page).
			Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, PostsPageSize)

	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*postRepository.ListPosts").
				Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// CountPosts returns the total number of posts matching the filter.
func (r *postRepository) CountPosts(ctx context.Context, filter models.PostFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountPostsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.CountPosts").
			Msg("failed to create query")
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*postRepository.CountPosts").
			Msg("failed to count posts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// UpdatePost applies a partial update and returns the updated record.
// Returns [ErrPostNotFound] when no row matches.
func (r *postRepository) UpdatePost(ctx context.Context, postID string, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(postID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.UpdatePost").
			Str("post_id", postID).
			Msg("failed to create query")
		return models.Post{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).
			Str("func", "*postRepository.UpdatePost").
			Str("post_id", postID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: post update failed")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// DeletePost removes the given post.
// Returns [ErrPostNotFound] when no row was deleted.
func (r *postRepository) DeletePost(ctx context.Context, postID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.DeletePost").
			Str("post_id", postID).
			Msg("error: post delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPost reads one posts-table row, decoding the jsonb tags column.
func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	var tagsJSON []byte

	if err := row.Scan(
		&post.PostID,
		&post.UserID,
		&post.Username,
		&post.Title,
		&post.Body,
		&tagsJSON,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return models.Post{}, err
	}

	if err := json.Unmarshal(tagsJSON, &post.Tags); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}
