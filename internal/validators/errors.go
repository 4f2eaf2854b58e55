package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("username must be 3-20 alphanumeric characters")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyBody        = errors.New("body is required")
	ErrEmptyTag         = errors.New("tags cannot contain empty values")
	ErrMissingTags      = errors.New("tags are required")
	ErrInvalidPage      = errors.New("page must be a positive number")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
