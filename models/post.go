package models

import "time"

// Post represents a single blog entry. The owner reference (UserID and the
// Username snapshot) is captured from the authenticated session at creation
// time and is immutable afterwards: update queries never touch it.
type Post struct {
	// PostID is the unique identifier of the post (UUID string).
	PostID string `json:"id"`

	// UserID is the identifier of the owning user. Ground truth for the
	// ownership check on mutating operations.
	UserID string `json:"user_id"`

	// Username is the owner's account name snapshotted at creation time.
	// Used for filtering post listings by author.
	Username string `json:"username"`

	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostFilter narrows a post listing. Zero-value fields are ignored.
// Page is 1-based; callers validate Page >= 1 before the filter reaches
// the repository.
type PostFilter struct {
	// Username restricts the listing to posts owned by the given author.
	Username string

	// Tag restricts the listing to posts carrying the given tag.
	Tag string

	// Page selects which fixed-size page of the result set to return.
	Page int
}

// PostUpdate describes a partial update of a post. Nil fields are left
// unchanged. The owner reference cannot be updated through this type.
type PostUpdate struct {
	Title *string   `json:"title,omitempty"`
	Body  *string   `json:"body,omitempty"`
	Tags  *[]string `json:"tags,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u PostUpdate) Empty() bool {
	return u.Title == nil && u.Body == nil && u.Tags == nil
}

// Preview returns a copy of the post with the body trimmed to at most limit
// runes. Longer bodies get an ellipsis appended. Used by list endpoints so
// that large bodies do not inflate listing responses.
func (p Post) Preview(limit int) Post {
	runes := []rune(p.Body)
	if len(runes) <= limit {
		return p
	}

	trimmed := p
	trimmed.Body = string(runes[:limit]) + "..."
	return trimmed
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
