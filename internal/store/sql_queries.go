package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog-keeper/models"
)

const (
	createUser = `INSERT INTO users (user_id, username, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createPost = `INSERT INTO posts (post_id, user_id, username, title, body, tags)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING post_id, user_id, username, title, body, tags, created_at, updated_at;`

	getPostByID = `SELECT post_id, user_id, username, title, body, tags, created_at, updated_at
    FROM posts
    WHERE post_id = $1;`

	deletePost = `DELETE FROM posts
    WHERE post_id = $1;`
)

// PostsPageSize is the fixed number of posts per listing page.
const PostsPageSize = 10

// psql is the squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var postColumns = []string{
	"post_id", "user_id", "username", "title", "body", "tags", "created_at", "updated_at",
}

// withPostFilters applies the optional username and tag predicates of filter
// to a squirrel select builder. The tags column is jsonb, so the tag filter
// uses the containment operator against a single-element JSON array.
func withPostFilters(builder sq.SelectBuilder, filter models.PostFilter) (sq.SelectBuilder, error) {
	if filter.Username != "" {
		builder = builder.Where(sq.Eq{"username": filter.Username})
	}

	if filter.Tag != "" {
		tagJSON, err := json.Marshal([]string{filter.Tag})
		if err != nil {
			return builder, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Where(sq.Expr("tags @> ?", tagJSON))
	}

	return builder, nil
}

// buildListPostsQuery builds the paginated post listing query.
// Ordering is post_id DESC: identifiers are time-ordered UUIDv7 values, so
// descending id order returns the newest posts first.
func buildListPostsQuery(filter models.PostFilter) (string, []any, error) {
	builder := psql.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("post_id DESC").
		Limit(uint64(PostsPageSize)).
		Offset(uint64((filter.Page - 1) * PostsPageSize))

	builder, err := withPostFilters(builder, filter)
	if err != nil {
		return "", nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountPostsQuery builds the matching-row count query for the same
// filter as [buildListPostsQuery], without pagination.
func buildCountPostsQuery(filter models.PostFilter) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From(models.Post{}.TableName())

	builder, err := withPostFilters(builder, filter)
	if err != nil {
		return "", nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdatePostQuery builds a partial UPDATE for the non-nil fields of
// update. The owner columns (user_id, username) are never part of the SET
// clause. Returns [ErrBuildingSQLQuery] when the update carries no fields.
func buildUpdatePostQuery(postID string, update models.PostUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := psql.
		Update(models.Post{}.TableName()).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"post_id": postID}).
		Suffix("RETURNING post_id, user_id, username, title, body, tags, created_at, updated_at")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}

	if update.Body != nil {
		builder = builder.Set("body", *update.Body)
	}

	if update.Tags != nil {
		tagsJSON, err := json.Marshal(*update.Tags)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Set("tags", tagsJSON)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
