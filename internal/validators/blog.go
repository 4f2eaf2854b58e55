// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldUsername targets the account name of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the plain-text secret of a credentials pair.
	FieldPassword = "password"

	// FieldTitle targets the title of a post.
	FieldTitle = "title"

	// FieldBody targets the body text of a post.
	FieldBody = "body"

	// FieldTags targets the tag list of a post or a partial update.
	FieldTags = "tags"

	// FieldPage targets the page number of a listing filter.
	FieldPage = "page"
)

// usernamePattern is the account-name rule: 3 to 20 ASCII letters or digits.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9]{3,20}$`)

// BlogValidator implements the Validator interface for the blog domain
// models: Credentials, Post, PostUpdate, and PostFilter.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type BlogValidator struct {
}

// NewBlogValidator constructs a new BlogValidator
// and returns it as the Validator interface.
func NewBlogValidator() Validator {
	return &BlogValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.Post / *models.Post
//   - models.PostUpdate / *models.PostUpdate
//   - models.PostFilter / *models.PostFilter
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Post:
		return v.validatePost(ctx, value, fields...)
	case *models.Post:
		return v.validatePost(ctx, *value, fields...)

	case models.PostUpdate:
		return v.validatePostUpdate(ctx, value, fields...)
	case *models.PostUpdate:
		return v.validatePostUpdate(ctx, *value, fields...)

	case models.PostFilter:
		return v.validatePostFilter(ctx, value, fields...)
	case *models.PostFilter:
		return v.validatePostFilter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials validates a username/password pair.
//
// Default validated fields (when none specified): Username, Password.
//
// The username must match usernamePattern; the password must be non-empty.
// Returns the first encountered validation error or nil.
func (v *BlogValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !usernamePattern.MatchString(credentials.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePost validates a post submitted for creation.
//
// Default validated fields: Title, Body, Tags.
//
// Title and Body must be non-empty; Tags must be present (an empty list is
// accepted, a missing one is not) and every tag in it must be non-empty.
// Returns a wrapped error naming the index of the first invalid tag.
func (v *BlogValidator) validatePost(ctx context.Context, post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldBody, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if post.Title == "" {
				return ErrEmptyTitle
			}
		case FieldBody:
			if post.Body == "" {
				return ErrEmptyBody
			}
		case FieldTags:
			if post.Tags == nil {
				return ErrMissingTags
			}
			for i, tag := range post.Tags {
				if tag == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyTag)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePostUpdate validates a partial update descriptor.
//
// Default validated fields: Title, Body, Tags.
//
// Field-level checks only trigger when the corresponding pointer is non-nil
// (partial update semantics: nil means "do not touch").
//
// After field-level checks, an additional structural rule is enforced:
// at least one field (Title, Body, or Tags) must be non-nil.
// Returns ErrNoFieldsToUpdate otherwise.
func (v *BlogValidator) validatePostUpdate(ctx context.Context, update models.PostUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldBody, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title != nil && *update.Title == "" {
				return ErrEmptyTitle
			}
		case FieldBody:
			if update.Body != nil && *update.Body == "" {
				return ErrEmptyBody
			}
		case FieldTags:
			if update.Tags != nil {
				for i, tag := range *update.Tags {
					if tag == "" {
						return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyTag)
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	return nil
}

// validatePostFilter validates a listing filter.
//
// Default validated fields: Page.
//
// The page number must be positive; username and tag filters are free-form
// and match nothing rather than fail when malformed.
func (v *BlogValidator) validatePostFilter(ctx context.Context, filter models.PostFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if filter.Page < 1 {
				return ErrInvalidPage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
